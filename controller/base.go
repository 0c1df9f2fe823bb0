package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/pkg/response"
)

// getCallerID 从 gin.Context 中取出认证中间件注入的调用方用户 ID。
// 取不到或类型不对说明路由没有挂认证中间件，按未认证处理。
func getCallerID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(string(constants.UserIDKey))
	if !exists {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取用户信息，请先登录")
		return 0, false
	}
	userID, ok := value.(uint64)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
		return 0, false
	}
	return userID, true
}

// parsePathID 解析路径参数中的十进制资源 ID。
func parsePathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的路径参数: "+name)
		return 0, false
	}
	return id, true
}

// respondServiceError 把服务层哨兵错误统一映射为 HTTP 响应。
// 未知错误一律归并为 500，不向调用方暴露内部细节。
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, myErrors.ErrUserAlreadyExists):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeUserAlreadyExists, "用户名已被注册")
	case errors.Is(err, myErrors.ErrEmailAlreadyExists):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeUserAlreadyExists, "邮箱已被注册")
	case errors.Is(err, myErrors.ErrFileTooLarge):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientPayloadTooLarge, "文件超过大小上限")
	case errors.Is(err, myErrors.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "用户名或密码错误")
	case errors.Is(err, myErrors.ErrInvalidToken):
		c.Header("WWW-Authenticate", "Bearer")
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无效或已过期的访问令牌")
	case errors.Is(err, myErrors.ErrForbidden):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientForbidden, "无权操作该资源")
	case errors.Is(err, myErrors.ErrUserNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientNotFound, "用户不存在")
	case errors.Is(err, myErrors.ErrPostNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientNotFound, "帖子不存在")
	case errors.Is(err, myErrors.ErrCommentNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientNotFound, "评论不存在")
	case errors.Is(err, myErrors.ErrFileNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientNotFound, "附件不存在")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务内部错误")
	}
}
