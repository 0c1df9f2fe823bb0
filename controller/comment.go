package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/pkg/response"
	"github.com/Xushengqwer/blog_service/service"
)

// CommentController 定义评论控制器的结构体
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController 构造函数，用于创建 CommentController 实例
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CreateComment 发表评论
// @Summary      发表评论
// @Description  以当前登录用户的身份在指定帖子下发表评论，父帖子必须存在。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCommentRequest true "评论内容与目标帖子"
// @Success      201 {object} response.APIResponse[vo.CommentVO] "发表成功"
// @Failure      400 {object} response.APIResponse[any] "无效的请求参数"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      404 {object} response.APIResponse[any] "目标帖子不存在"
// @Router       /api/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	commentVO, err := ctrl.commentService.CreateComment(c.Request.Context(), callerID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, commentVO, "评论发表成功")
}

// ListCommentsByPostID 获取帖子的评论列表
// @Summary      获取帖子评论列表 (公开)
// @Description  返回指定帖子下的全部评论，按发表顺序升序。帖子不存在时返回 404。
// @Tags         comments (评论)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Success      200 {object} response.APIResponse[[]vo.CommentVO] "评论列表"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      404 {object} response.APIResponse[any] "帖子不存在"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/comments/post/{post_id} [get]
func (ctrl *CommentController) ListCommentsByPostID(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}

	comments, err := ctrl.commentService.ListCommentsByPostID(c.Request.Context(), postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, comments, "评论列表获取成功")
}

// GetCommentByID 获取单条评论
// @Summary      获取评论详情 (公开)
// @Description  根据评论 ID 返回单条评论。
// @Tags         comments (评论)
// @Produce      json
// @Param        comment_id path uint64 true "评论ID" minimum(1)
// @Success      200 {object} response.APIResponse[vo.CommentVO] "评论详情"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      404 {object} response.APIResponse[any] "评论不存在"
// @Router       /api/comments/{comment_id} [get]
func (ctrl *CommentController) GetCommentByID(c *gin.Context) {
	commentID, ok := parsePathID(c, "comment_id")
	if !ok {
		return
	}

	commentVO, err := ctrl.commentService.GetCommentByID(c.Request.Context(), commentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, commentVO, "评论获取成功")
}

// UpdateComment 更新评论
// @Summary      更新评论
// @Description  更新评论内容，仅限评论作者本人。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        comment_id path uint64 true "评论ID" minimum(1)
// @Param        request body dto.UpdateCommentRequest true "新的评论内容"
// @Success      200 {object} response.APIResponse[vo.CommentVO] "更新后的评论"
// @Failure      400 {object} response.APIResponse[any] "无效的请求参数"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      403 {object} response.APIResponse[any] "调用方不是评论作者"
// @Failure      404 {object} response.APIResponse[any] "评论不存在"
// @Router       /api/comments/{comment_id} [put]
func (ctrl *CommentController) UpdateComment(c *gin.Context) {
	commentID, ok := parsePathID(c, "comment_id")
	if !ok {
		return
	}
	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	commentVO, err := ctrl.commentService.UpdateComment(c.Request.Context(), callerID, commentID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, commentVO, "评论更新成功")
}

// DeleteComment 删除评论
// @Summary      删除评论
// @Description  软删除指定评论，仅限评论作者本人。
// @Tags         comments (评论)
// @Security     BearerAuth
// @Param        comment_id path uint64 true "评论ID" minimum(1)
// @Success      204 "删除成功，无响应体"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      403 {object} response.APIResponse[any] "调用方不是评论作者"
// @Failure      404 {object} response.APIResponse[any] "评论不存在"
// @Router       /api/comments/{comment_id} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	commentID, ok := parsePathID(c, "comment_id")
	if !ok {
		return
	}
	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	if err := ctrl.commentService.DeleteComment(c.Request.Context(), callerID, commentID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// RegisterRoutes 注册 CommentController 的路由
func (ctrl *CommentController) RegisterRoutes(public, authed *gin.RouterGroup) {
	publicComments := public.Group("/comments")
	{
		publicComments.GET("/post/:post_id", ctrl.ListCommentsByPostID)
		publicComments.GET("/:comment_id", ctrl.GetCommentByID)
	}

	authedComments := authed.Group("/comments")
	{
		authedComments.POST("", ctrl.CreateComment)
		authedComments.PUT("/:comment_id", ctrl.UpdateComment)
		authedComments.DELETE("/:comment_id", ctrl.DeleteComment)
	}
}
