package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/pkg/response"
	"github.com/Xushengqwer/blog_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService service.PostService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{postService: postService}
}

// CreatePost 发布新帖子
// @Summary      发布帖子
// @Description  以当前登录用户的身份发布一篇新帖子，浏览量从 0 开始。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreatePostRequest true "帖子内容"
// @Success      201 {object} response.APIResponse[vo.PostVO] "发布成功，返回完整帖子"
// @Failure      400 {object} response.APIResponse[any] "无效的请求参数"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	postVO, err := ctrl.postService.CreatePost(c.Request.Context(), callerID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, postVO, "帖子发布成功")
}

// ListPosts 获取帖子列表
// @Summary      获取帖子列表 (公开)
// @Description  分页获取帖子列表，按创建时间倒序。列表浏览不计入浏览量。
// @Tags         posts (帖子)
// @Produce      json
// @Param        limit query int false "每页数量" format(int32) minimum(1) maximum(100) default(100)
// @Param        offset query int false "偏移量" format(int32) minimum(0) default(0)
// @Success      200 {object} response.APIResponse[[]vo.PostVO] "帖子列表"
// @Failure      400 {object} response.APIResponse[any] "无效的查询参数"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	var req dto.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	posts, err := ctrl.postService.ListPosts(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, posts, "帖子列表获取成功")
}

// GetPostByID 获取帖子详情
// @Summary      获取帖子详情 (公开)
// @Description  根据帖子 ID 返回帖子详情，每次调用会把浏览量加一，返回值包含本次浏览。
// @Tags         posts (帖子)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Success      200 {object} response.APIResponse[vo.PostVO] "帖子详情"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      404 {object} response.APIResponse[any] "帖子不存在"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/posts/{post_id} [get]
func (ctrl *PostController) GetPostByID(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}

	postVO, err := ctrl.postService.GetPostByID(c.Request.Context(), postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, postVO, "帖子获取成功")
}

// UpdatePost 更新帖子
// @Summary      更新帖子
// @Description  更新帖子的标题或正文，仅限作者本人。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        request body dto.UpdatePostRequest true "要更新的字段"
// @Success      200 {object} response.APIResponse[vo.PostVO] "更新后的帖子"
// @Failure      400 {object} response.APIResponse[any] "无效的请求参数"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      403 {object} response.APIResponse[any] "调用方不是帖子作者"
// @Failure      404 {object} response.APIResponse[any] "帖子不存在"
// @Router       /api/posts/{post_id} [put]
func (ctrl *PostController) UpdatePost(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	postVO, err := ctrl.postService.UpdatePost(c.Request.Context(), callerID, postID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, postVO, "帖子更新成功")
}

// DeletePost 删除帖子
// @Summary      删除帖子
// @Description  软删除指定帖子，仅限作者本人。
// @Tags         posts (帖子)
// @Security     BearerAuth
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Success      204 "删除成功，无响应体"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      403 {object} response.APIResponse[any] "调用方不是帖子作者"
// @Failure      404 {object} response.APIResponse[any] "帖子不存在"
// @Router       /api/posts/{post_id} [delete]
func (ctrl *PostController) DeletePost(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	if err := ctrl.postService.DeletePost(c.Request.Context(), callerID, postID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// RegisterRoutes 注册 PostController 的路由
func (ctrl *PostController) RegisterRoutes(public, authed *gin.RouterGroup) {
	publicPosts := public.Group("/posts")
	{
		publicPosts.GET("", ctrl.ListPosts)
		publicPosts.GET("/:post_id", ctrl.GetPostByID)
	}

	authedPosts := authed.Group("/posts")
	{
		authedPosts.POST("", ctrl.CreatePost)
		authedPosts.PUT("/:post_id", ctrl.UpdatePost)
		authedPosts.DELETE("/:post_id", ctrl.DeletePost)
	}
}
