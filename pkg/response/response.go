package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 业务错误码
// - 约定: 4xxyy / 5xxyy，前三位与 HTTP 状态码对应，后两位区分具体业务场景
const (
	CodeSuccess = 0

	ErrCodeClientInvalidInput    = 40001 // 请求参数不合法
	ErrCodeUserAlreadyExists     = 40002 // 用户名或邮箱已被占用
	ErrCodeClientPayloadTooLarge = 40003 // 上传内容超过大小上限
	ErrCodeClientUnauthorized    = 40101 // 未认证或令牌无效/过期
	ErrCodeClientForbidden       = 40301 // 已认证但无权操作目标资源
	ErrCodeClientNotFound        = 40401 // 目标资源或其依赖的关联资源不存在
	ErrCodeServerInternal        = 50001 // 服务器内部错误，对外不暴露细节
)

// APIResponse 统一的响应信封
type APIResponse[T any] struct {
	Code    int    `json:"code"`              // 业务错误码，0 表示成功
	Message string `json:"message,omitempty"` // 给调用方的提示信息
	Data    T      `json:"data,omitempty"`    // 业务数据
}

// RespondSuccess 以 200 返回成功信封
func RespondSuccess[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusOK, APIResponse[T]{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// RespondCreated 以 201 返回成功信封（资源创建场景）
func RespondCreated[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusCreated, APIResponse[T]{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// RespondNoContent 以 204 返回，约定用于删除成功
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondError 返回错误信封
// - message 只允许携带面向调用方的通用描述，存储层错误细节一律不外泄
func RespondError(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, APIResponse[any]{
		Code:    code,
		Message: message,
	})
}
