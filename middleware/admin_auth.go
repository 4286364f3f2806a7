package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xwlin/livedash-sdk/response"
)

const (
	// AdminSecretHeader 后台接口的共享密钥请求头
	AdminSecretHeader = "X-Admin-Secret"
	// AdminSecretQuery header 不方便时的 query 兜底
	AdminSecretQuery = "secret"
)

/*
AdminAuthMiddleware 后台共享密钥校验：

- 优先从 X-Admin-Secret 头读取
- 如果没有，再从 query 参数读取（secret=xxx）
- 常数时间比较，校验失败直接 401

使用：adminAPI.Use(middleware.AdminAuthMiddleware(secret))
*/
func AdminAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
				Code: response.CodeInternalError,
				Msg:  "admin secret is not configured",
			})
			return
		}

		got := strings.TrimSpace(c.GetHeader(AdminSecretHeader))
		if got == "" {
			got = strings.TrimSpace(c.Query(AdminSecretQuery))
		}
		if got == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Code: response.CodeSecretInvalid,
				Msg:  "missing admin secret",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{
				Code: response.CodeSecretInvalid,
				Msg:  "invalid admin secret",
			})
			return
		}
		c.Next()
	}
}
