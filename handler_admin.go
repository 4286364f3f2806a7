package livedash_sdk

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	model "github.com/xwlin/livedash-sdk/models"
	"github.com/xwlin/livedash-sdk/response"
)

var _ = model.QnaItem{}

// -------------------- 后台（Q&A / Cookie 池）透传接口 --------------------
//
// 这些数据都落在采集后端，SDK 只补上共享密钥原样转发。
// 写操作挂在 admin 路由组上，由 middleware.AdminAuthMiddleware 把门。

// proxyRaw 把后端的原始响应写回去。后端返回什么就是什么。
func proxyRaw(ctx *gin.Context, status int, data []byte, err error) {
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeUpstreamError, err.Error()))
		return
	}
	ctx.Data(status, "application/json", data)
}

func readBody(ctx *gin.Context) []byte {
	if ctx.Request.Body == nil {
		return nil
	}
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil || len(body) == 0 {
		return nil
	}
	return body
}

// GinHandleQnaList Q&A 列表（前台展示用，visible_only 默认 true）
// @Summary Q&A 列表
// @Tags 后台
// @Produce json
// @Param visible_only query bool false "只看可见条目，默认 true"
// @Success 200 {array} model.QnaItem "Q&A 列表"
// @Router /qna [get]
func (e *DashboardEngine) GinHandleQnaList(ctx *gin.Context) {
	status, data, err := e.AdminService.ProxyQna(ctx.Request.Context(), http.MethodGet, "/qna", ctx.Request.URL.Query(), nil)
	proxyRaw(ctx, status, data, err)
}

// GinHandleQnaSave 新增或更新 Q&A 条目
// @Summary 保存 Q&A
// @Tags 后台
// @Accept json
// @Produce json
// @Param req body model.QnaItem true "条目内容（带 id 为更新）"
// @Success 200 {object} model.QnaItem "保存后的条目"
// @Security AdminSecret
// @Router /qna [post]
func (e *DashboardEngine) GinHandleQnaSave(ctx *gin.Context) {
	status, data, err := e.AdminService.ProxyQna(ctx.Request.Context(), http.MethodPost, "/qna", nil, readBody(ctx))
	proxyRaw(ctx, status, data, err)
}

// GinHandleQnaDelete 删除 Q&A 条目
// @Summary 删除 Q&A
// @Tags 后台
// @Produce json
// @Param id path string true "条目ID"
// @Success 200 {object} response.Response "删除结果"
// @Security AdminSecret
// @Router /qna/{id} [delete]
func (e *DashboardEngine) GinHandleQnaDelete(ctx *gin.Context) {
	status, data, err := e.AdminService.ProxyQna(ctx.Request.Context(), http.MethodDelete, "/qna/"+ctx.Param("id"), nil, nil)
	proxyRaw(ctx, status, data, err)
}

// GinHandleCookieList Cookie 池列表
// @Summary Cookie 池列表
// @Tags 后台
// @Produce json
// @Success 200 {array} model.CookieItem "Cookie 池"
// @Security AdminSecret
// @Router /admin/cookies [get]
func (e *DashboardEngine) GinHandleCookieList(ctx *gin.Context) {
	status, data, err := e.AdminService.ProxyCookies(ctx.Request.Context(), http.MethodGet, nil)
	proxyRaw(ctx, status, data, err)
}

// GinHandleCookieSave 新增或更新 Cookie（按 note 区分账号）
// @Summary 保存 Cookie
// @Tags 后台
// @Accept json
// @Produce json
// @Param req body model.CookieItem true "Cookie 内容"
// @Success 200 {object} response.Response "保存结果"
// @Security AdminSecret
// @Router /admin/cookies [post]
func (e *DashboardEngine) GinHandleCookieSave(ctx *gin.Context) {
	status, data, err := e.AdminService.ProxyCookies(ctx.Request.Context(), http.MethodPost, readBody(ctx))
	proxyRaw(ctx, status, data, err)
}

// GinHandleCookieDelete 删除 Cookie（body 里带 note + cookie，与后端约定一致）
// @Summary 删除 Cookie
// @Tags 后台
// @Accept json
// @Produce json
// @Param req body model.CookieItem true "要删除的条目"
// @Success 200 {object} response.Response "删除结果"
// @Security AdminSecret
// @Router /admin/cookies [delete]
func (e *DashboardEngine) GinHandleCookieDelete(ctx *gin.Context) {
	status, data, err := e.AdminService.ProxyCookies(ctx.Request.Context(), http.MethodDelete, readBody(ctx))
	proxyRaw(ctx, status, data, err)
}
