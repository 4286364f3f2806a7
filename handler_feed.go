package livedash_sdk

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xwlin/livedash-sdk/feed"
	model "github.com/xwlin/livedash-sdk/models"
	"github.com/xwlin/livedash-sdk/response"
)

// -------------------- 视图会话（房间页动态）相关接口 --------------------
//
// 每打开一个房间页就创建一个视图会话：SDK 在服务端维护弹幕/礼物/PK 的
// 滚动窗口并自动轮询，前端只要定期拉 state、滚动到底时拉 older。

type CreateViewReq struct {
	RoomID string `json:"room_id" binding:"required"`
	// JumpTime 时间跳转目标（本地墙钟，如 "2026-08-28T21:00:00"）。
	// 非空进入回放模式：不轮询，首屏锚定到目标时刻附近。
	JumpTime string `json:"jump_time"`

	feed.Params
}

// GinHandleCreateView 创建房间视图会话
// @Summary 创建视图会话
// @Description 创建后返回 view_id，之后用它拉取合并状态
// @Tags 视图
// @Accept json
// @Produce json
// @Param req body CreateViewReq true "房间与筛选条件"
// @Success 200 {object} response.Response "view_id"
// @Failure 400 {object} response.Response "参数错误"
// @Router /views [post]
func (e *DashboardEngine) GinHandleCreateView(ctx *gin.Context) {
	var req CreateViewReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}

	var jump *time.Time
	if req.JumpTime != "" {
		t := model.ParseEventTime(req.JumpTime)
		if t.IsZero() {
			ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "invalid jump_time"))
			return
		}
		jump = &t
	}

	sess := feed.NewSession(e.Backend, req.RoomID, jump, req.Params, e.config.Feed)
	viewID := e.Views.Register(sess)

	ctx.JSON(http.StatusOK, response.Success(gin.H{"view_id": viewID}))
}

// getView 取视图会话，不存在时写好响应并返回 nil。
func (e *DashboardEngine) getView(ctx *gin.Context) *feed.Session {
	sess, ok := e.Views.Get(ctx.Param("view_id"))
	if !ok {
		ctx.JSON(http.StatusOK, response.Error(response.CodeViewNotFound, "view not found or expired"))
		return nil
	}
	return sess
}

// GinHandleViewState 拉取视图会话的合并状态
// @Summary 视图状态
// @Description 弹幕/礼物/PK 当前窗口 + 房间快照 + 各加载标志
// @Tags 视图
// @Produce json
// @Param view_id path string true "视图ID"
// @Success 200 {object} response.Response{data=feed.State} "合并状态"
// @Router /views/{view_id} [get]
func (e *DashboardEngine) GinHandleViewState(ctx *gin.Context) {
	sess := e.getView(ctx)
	if sess == nil {
		return
	}
	ctx.JSON(http.StatusOK, response.Success(sess.State()))
}

// GinHandleViewOlderChats 弹幕向旧翻页
// @Summary 弹幕翻页
// @Description 以当前最旧一条为游标向历史方向翻一页；没有更多时为空操作
// @Tags 视图
// @Produce json
// @Param view_id path string true "视图ID"
// @Success 200 {object} response.Response{data=feed.State} "翻页后的状态"
// @Router /views/{view_id}/chats/older [post]
func (e *DashboardEngine) GinHandleViewOlderChats(ctx *gin.Context) {
	sess := e.getView(ctx)
	if sess == nil {
		return
	}
	sess.LoadOlderChats()
	ctx.JSON(http.StatusOK, response.Success(sess.State()))
}

// GinHandleViewOlderGifts 礼物向旧翻页
// @Summary 礼物翻页
// @Tags 视图
// @Produce json
// @Param view_id path string true "视图ID"
// @Success 200 {object} response.Response{data=feed.State} "翻页后的状态"
// @Router /views/{view_id}/gifts/older [post]
func (e *DashboardEngine) GinHandleViewOlderGifts(ctx *gin.Context) {
	sess := e.getView(ctx)
	if sess == nil {
		return
	}
	sess.LoadOlderGifts()
	ctx.JSON(http.StatusOK, response.Success(sess.State()))
}

// GinHandleViewActivatePk 激活 PK 标签页
// @Summary 激活 PK 标签页
// @Description 首次激活惰性加载 PK 列表，之后随轮询刷新
// @Tags 视图
// @Produce json
// @Param view_id path string true "视图ID"
// @Success 200 {object} response.Response{data=feed.State} "激活后的状态"
// @Router /views/{view_id}/pk/activate [post]
func (e *DashboardEngine) GinHandleViewActivatePk(ctx *gin.Context) {
	sess := e.getView(ctx)
	if sess == nil {
		return
	}
	sess.ActivatePk()
	ctx.JSON(http.StatusOK, response.Success(sess.State()))
}

// GinHandleViewDeactivatePk 离开 PK 标签页
// @Summary 离开 PK 标签页
// @Tags 视图
// @Produce json
// @Param view_id path string true "视图ID"
// @Success 200 {object} response.Response{data=feed.State} "当前状态"
// @Router /views/{view_id}/pk/deactivate [post]
func (e *DashboardEngine) GinHandleViewDeactivatePk(ctx *gin.Context) {
	sess := e.getView(ctx)
	if sess == nil {
		return
	}
	sess.DeactivatePk()
	ctx.JSON(http.StatusOK, response.Success(sess.State()))
}

// GinHandleViewUpdateFilters 同房间内变更筛选条件
// @Summary 变更筛选
// @Description 重置并重载弹幕/礼物窗口；PK 与关键词/价格无关，不受影响
// @Tags 视图
// @Accept json
// @Produce json
// @Param view_id path string true "视图ID"
// @Param req body feed.Params true "筛选条件"
// @Success 200 {object} response.Response{data=feed.State} "重载中的状态"
// @Router /views/{view_id}/filters [put]
func (e *DashboardEngine) GinHandleViewUpdateFilters(ctx *gin.Context) {
	sess := e.getView(ctx)
	if sess == nil {
		return
	}

	var params feed.Params
	if err := ctx.ShouldBindJSON(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, err.Error()))
		return
	}
	sess.UpdateFilters(params)
	ctx.JSON(http.StatusOK, response.Success(sess.State()))
}

// GinHandleCloseView 关闭视图会话
// @Summary 关闭视图会话
// @Description 取消在途请求并停止轮询；不调用也会在空闲超时后被回收
// @Tags 视图
// @Produce json
// @Param view_id path string true "视图ID"
// @Success 200 {object} response.Response "关闭成功"
// @Router /views/{view_id} [delete]
func (e *DashboardEngine) GinHandleCloseView(ctx *gin.Context) {
	e.Views.Close(ctx.Param("view_id"))
	ctx.JSON(http.StatusOK, response.Success(nil))
}
