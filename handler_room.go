package livedash_sdk

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "github.com/xwlin/livedash-sdk/models"
	"github.com/xwlin/livedash-sdk/response"
)

var _ = model.RoomDetail{}

// -------------------- 房间（Room）相关接口 --------------------

// GinHandleListRooms 房间列表
// @Summary 房间列表
// @Description 首页卡片用的房间列表（短 TTL 缓存）
// @Tags 房间
// @Produce json
// @Success 200 {object} response.Response{data=[]model.RoomInfo} "房间列表"
// @Failure 200 {object} response.Response "后端请求失败"
// @Router /rooms [get]
func (e *DashboardEngine) GinHandleListRooms(ctx *gin.Context) {
	rooms, err := e.RoomService.ListRooms(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeUpstreamError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(rooms))
}

// GinHandleRoomDetail 房间实时快照
// @Summary 房间实时快照
// @Description 在线人数、峰值、点赞、累计钻石、涨粉、直播状态等
// @Tags 房间
// @Produce json
// @Param room_id path string true "房间ID"
// @Success 200 {object} response.Response{data=model.RoomDetail} "房间快照"
// @Failure 200 {object} response.Response "后端请求失败"
// @Router /rooms/{room_id}/detail [get]
func (e *DashboardEngine) GinHandleRoomDetail(ctx *gin.Context) {
	roomID := ctx.Param("room_id")
	if roomID == "" {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "missing room_id"))
		return
	}

	detail, err := e.RoomService.GetDetail(ctx.Request.Context(), roomID)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeUpstreamError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(detail))
}

// GinHandleStatsSummary 全站统计
// @Summary 全站统计
// @Description 消息总量、活跃房间数、礼物总价值、系统健康度
// @Tags 房间
// @Produce json
// @Success 200 {object} response.Response{data=model.StatsSummary} "统计数据"
// @Failure 200 {object} response.Response "后端请求失败"
// @Router /stats/summary [get]
func (e *DashboardEngine) GinHandleStatsSummary(ctx *gin.Context) {
	stats, err := e.RoomService.GetStats(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeUpstreamError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(stats))
}
