package livedash_sdk

import (
	"github.com/gin-gonic/gin"

	"github.com/xwlin/livedash-sdk/middleware"
)

// RegisterGinRoutes 在 /api/v1 下注册全部看板路由。
// 需要更细的控制（自定义分组、额外中间件）时可以不用它，
// 直接把 GinHandleXxx 挂到自己的路由上。
func (e *DashboardEngine) RegisterGinRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	// 房间模块
	roomAPI := api.Group("/rooms")
	{
		roomAPI.GET("", e.GinHandleListRooms)
		roomAPI.GET("/:room_id/detail", e.GinHandleRoomDetail)
	}
	api.GET("/stats/summary", e.GinHandleStatsSummary)

	// 视图会话模块（房间页动态窗口）
	viewAPI := api.Group("/views")
	{
		viewAPI.POST("", e.GinHandleCreateView)
		viewAPI.GET("/:view_id", e.GinHandleViewState)
		viewAPI.DELETE("/:view_id", e.GinHandleCloseView)
		viewAPI.POST("/:view_id/chats/older", e.GinHandleViewOlderChats)
		viewAPI.POST("/:view_id/gifts/older", e.GinHandleViewOlderGifts)
		viewAPI.POST("/:view_id/pk/activate", e.GinHandleViewActivatePk)
		viewAPI.POST("/:view_id/pk/deactivate", e.GinHandleViewDeactivatePk)
		viewAPI.PUT("/:view_id/filters", e.GinHandleViewUpdateFilters)
	}

	// 搜索 / 主播模块
	api.GET("/search/global", e.GinHandleGlobalSearch)
	api.GET("/authors", e.GinHandleSearchAuthors)
	api.GET("/authors/:sec_uid", e.GinHandleAuthorDetail)
	api.GET("/authors/:sec_uid/rooms", e.GinHandleAuthorRooms)
	api.GET("/lookup_user/:sec_uid", e.GinHandleLookupUser)

	// Q&A 前台只读
	api.GET("/qna", e.GinHandleQnaList)

	// 后台写操作，共享密钥把门
	adminAPI := api.Group("")
	adminAPI.Use(middleware.AdminAuthMiddleware(e.config.AdminSecret))
	{
		adminAPI.POST("/qna", e.GinHandleQnaSave)
		adminAPI.DELETE("/qna/:id", e.GinHandleQnaDelete)
		adminAPI.GET("/admin/cookies", e.GinHandleCookieList)
		adminAPI.POST("/admin/cookies", e.GinHandleCookieSave)
		adminAPI.DELETE("/admin/cookies", e.GinHandleCookieDelete)
	}
}
