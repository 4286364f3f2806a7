package livedash_sdk

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	model "github.com/xwlin/livedash-sdk/models"
	"github.com/xwlin/livedash-sdk/response"
)

var _ = model.Author{}

// -------------------- 搜索 / 主播相关接口 --------------------

// GinHandleGlobalSearch 全局搜索
// @Summary 全局搜索
// @Description 搜主播/历史记录，结果结构由后端定义，原样透传
// @Tags 搜索
// @Produce json
// @Param keyword query string true "关键词"
// @Param limit query int false "条数上限，默认 50"
// @Success 200 {object} response.Response "搜索结果"
// @Router /search/global [get]
func (e *DashboardEngine) GinHandleGlobalSearch(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	if keyword == "" {
		ctx.JSON(http.StatusBadRequest, response.Error(response.CodeParamError, "missing keyword"))
		return
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	result, err := e.AuthorService.GlobalSearch(ctx.Request.Context(), keyword, limit)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeUpstreamError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(result))
}

// GinHandleSearchAuthors 搜索主播
// @Summary 搜索主播
// @Tags 搜索
// @Produce json
// @Param keyword query string true "关键词"
// @Param limit query int false "条数上限，默认 50"
// @Success 200 {object} response.Response{data=[]model.Author} "主播列表"
// @Router /authors [get]
func (e *DashboardEngine) GinHandleSearchAuthors(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	authors, err := e.AuthorService.Search(ctx.Request.Context(), keyword, limit)
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeUpstreamError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(authors))
}

// GinHandleAuthorDetail 主播档案
// @Summary 主播档案
// @Tags 搜索
// @Produce json
// @Param sec_uid path string true "主播 sec_uid"
// @Success 200 {object} response.Response{data=model.Author} "主播档案"
// @Router /authors/{sec_uid} [get]
func (e *DashboardEngine) GinHandleAuthorDetail(ctx *gin.Context) {
	author, err := e.AuthorService.GetDetail(ctx.Request.Context(), ctx.Param("sec_uid"))
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeUpstreamError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(author))
}

// GinHandleAuthorRooms 主播历史场次
// @Summary 主播历史场次
// @Tags 搜索
// @Produce json
// @Param sec_uid path string true "主播 sec_uid"
// @Success 200 {object} response.Response{data=[]model.RoomInfo} "历史场次"
// @Router /authors/{sec_uid}/rooms [get]
func (e *DashboardEngine) GinHandleAuthorRooms(ctx *gin.Context) {
	rooms, err := e.AuthorService.GetRooms(ctx.Request.Context(), ctx.Param("sec_uid"))
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeUpstreamError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(rooms))
}

// GinHandleLookupUser 观众资料
// @Summary 观众资料
// @Description PK 贡献榜点开某个用户时查询
// @Tags 搜索
// @Produce json
// @Param sec_uid path string true "观众 sec_uid"
// @Success 200 {object} response.Response{data=model.UserProfile} "观众资料"
// @Router /lookup_user/{sec_uid} [get]
func (e *DashboardEngine) GinHandleLookupUser(ctx *gin.Context) {
	profile, err := e.AuthorService.LookupUser(ctx.Request.Context(), ctx.Param("sec_uid"))
	if err != nil {
		ctx.JSON(http.StatusOK, response.Error(response.CodeUpstreamError, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, response.Success(profile))
}
