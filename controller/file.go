package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/pkg/response"
	"github.com/Xushengqwer/blog_service/service"
)

// FileController 定义附件控制器的结构体
type FileController struct {
	fileService service.FileService
}

// NewFileController 构造函数，用于创建 FileController 实例
func NewFileController(fileService service.FileService) *FileController {
	return &FileController{fileService: fileService}
}

// UploadFile 上传附件
// @Summary      上传帖子附件
// @Description  以 multipart/form-data 上传一个附件到指定帖子，仅限帖子作者本人。
// @Tags         files (附件)
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Param        file formData file true "要上传的文件"
// @Success      201 {object} response.APIResponse[vo.FileVO] "上传成功，返回附件元数据"
// @Failure      400 {object} response.APIResponse[any] "参数不合法或文件超过大小上限"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      403 {object} response.APIResponse[any] "调用方不是帖子作者"
// @Failure      404 {object} response.APIResponse[any] "帖子不存在"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/files/upload/{post_id} [post]
func (ctrl *FileController) UploadFile(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}
	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "缺少文件字段 'file': "+err.Error())
		return
	}

	fileVO, err := ctrl.fileService.UploadFile(c.Request.Context(), callerID, postID, fileHeader)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, fileVO, "附件上传成功")
}

// ListFilesByPostID 获取帖子的附件列表
// @Summary      获取帖子附件列表 (公开)
// @Description  返回指定帖子下全部附件的元数据，不包含文件内容。
// @Tags         files (附件)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" minimum(1)
// @Success      200 {object} response.APIResponse[[]vo.FileVO] "附件元数据列表"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      404 {object} response.APIResponse[any] "帖子不存在"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/files/post/{post_id} [get]
func (ctrl *FileController) ListFilesByPostID(c *gin.Context) {
	postID, ok := parsePathID(c, "post_id")
	if !ok {
		return
	}

	files, err := ctrl.fileService.ListFilesByPostID(c.Request.Context(), postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, files, "附件列表获取成功")
}

// DownloadFile 下载附件
// @Summary      下载附件 (公开)
// @Description  按附件 ID 以流的方式返回文件内容，响应头携带原始文件名。
// @Tags         files (附件)
// @Produce      application/octet-stream
// @Param        file_id path uint64 true "附件ID" minimum(1)
// @Success      200 {file} binary "文件内容"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      404 {object} response.APIResponse[any] "附件不存在"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/files/{file_id} [get]
func (ctrl *FileController) DownloadFile(c *gin.Context) {
	fileID, ok := parsePathID(c, "file_id")
	if !ok {
		return
	}

	fileVO, body, err := ctrl.fileService.DownloadFile(c.Request.Context(), fileID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer body.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", fileVO.FileName),
	}
	c.DataFromReader(http.StatusOK, fileVO.FileSize, "application/octet-stream", body, extraHeaders)
}

// DeleteFile 删除附件
// @Summary      删除附件
// @Description  软删除附件元数据，仅限附件所属帖子的作者。
// @Tags         files (附件)
// @Security     BearerAuth
// @Param        file_id path uint64 true "附件ID" minimum(1)
// @Success      204 "删除成功，无响应体"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      403 {object} response.APIResponse[any] "调用方不是帖子作者"
// @Failure      404 {object} response.APIResponse[any] "附件不存在"
// @Router       /api/files/{file_id} [delete]
func (ctrl *FileController) DeleteFile(c *gin.Context) {
	fileID, ok := parsePathID(c, "file_id")
	if !ok {
		return
	}
	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	if err := ctrl.fileService.DeleteFile(c.Request.Context(), callerID, fileID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// RegisterRoutes 注册 FileController 的路由
func (ctrl *FileController) RegisterRoutes(public, authed *gin.RouterGroup) {
	publicFiles := public.Group("/files")
	{
		publicFiles.GET("/post/:post_id", ctrl.ListFilesByPostID)
		publicFiles.GET("/:file_id", ctrl.DownloadFile)
	}

	authedFiles := authed.Group("/files")
	{
		authedFiles.POST("/upload/:post_id", ctrl.UploadFile)
		authedFiles.DELETE("/:file_id", ctrl.DeleteFile)
	}
}
