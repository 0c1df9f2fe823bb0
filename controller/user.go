package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/pkg/response"
	"github.com/Xushengqwer/blog_service/service"
)

// UserController 定义用户控制器的结构体
type UserController struct {
	userService service.UserService
}

// NewUserController 构造函数，用于创建 UserController 实例
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Register 注册新用户
// @Summary      注册用户
// @Description  使用用户名、密码、邮箱和角色注册一个新用户。用户名和邮箱必须唯一。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterUserRequest true "注册信息"
// @Success      201 {object} response.APIResponse[vo.UserVO] "注册成功，返回不含密码的用户信息"
// @Failure      400 {object} response.APIResponse[any] "参数不合法或用户名/邮箱已被占用"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/users [post]
func (ctrl *UserController) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	userVO, err := ctrl.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondCreated(c, userVO, "注册成功")
}

// Login 用户登录
// @Summary      用户登录
// @Description  校验用户名与密码，成功后返回 Bearer 访问令牌。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录凭证"
// @Success      200 {object} response.APIResponse[vo.TokenVO] "登录成功，返回访问令牌"
// @Failure      400 {object} response.APIResponse[any] "无效的请求参数"
// @Failure      401 {object} response.APIResponse[any] "用户名或密码错误"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/users/login [post]
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	tokenVO, err := ctrl.userService.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, tokenVO, "登录成功")
}

// ListUsers 获取用户列表
// @Summary      获取用户列表
// @Description  返回全部未删除的用户，按注册时间降序。需要登录。
// @Tags         users (用户)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse[[]vo.UserVO] "用户列表"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      500 {object} response.APIResponse[any] "服务器内部错误"
// @Router       /api/users [get]
func (ctrl *UserController) ListUsers(c *gin.Context) {
	users, err := ctrl.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, users, "用户列表获取成功")
}

// GetMe 获取当前登录用户信息
// @Summary      获取我的信息
// @Description  返回当前令牌对应用户的信息。
// @Tags         users (用户)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse[vo.UserVO] "当前用户信息"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      404 {object} response.APIResponse[any] "用户不存在"
// @Router       /api/users/me [get]
func (ctrl *UserController) GetMe(c *gin.Context) {
	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	userVO, err := ctrl.userService.GetUserByID(c.Request.Context(), callerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, userVO, "获取成功")
}

// GetUserByID 获取指定用户信息
// @Summary      获取用户详情
// @Description  根据用户 ID 返回用户信息。需要登录。
// @Tags         users (用户)
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path uint64 true "用户ID" minimum(1)
// @Success      200 {object} response.APIResponse[vo.UserVO] "用户信息"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      404 {object} response.APIResponse[any] "用户不存在"
// @Router       /api/users/{user_id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	userID, ok := parsePathID(c, "user_id")
	if !ok {
		return
	}

	userVO, err := ctrl.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, userVO, "获取成功")
}

// UpdateUser 更新用户信息
// @Summary      更新用户信息
// @Description  稀疏更新用户名、密码、邮箱或角色。只能更新自己的账户。
// @Tags         users (用户)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path uint64 true "用户ID" minimum(1)
// @Param        request body dto.UpdateUserRequest true "要更新的字段"
// @Success      200 {object} response.APIResponse[vo.UserVO] "更新后的用户信息"
// @Failure      400 {object} response.APIResponse[any] "参数不合法或用户名/邮箱已被占用"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      403 {object} response.APIResponse[any] "不能修改其他用户的账户"
// @Failure      404 {object} response.APIResponse[any] "用户不存在"
// @Router       /api/users/{user_id} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	userID, ok := parsePathID(c, "user_id")
	if !ok {
		return
	}
	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	// 账户是私有资源，路径里的 ID 必须就是调用方自己。
	if userID != callerID {
		respondServiceError(c, myErrors.ErrForbidden)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	userVO, err := ctrl.userService.UpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondSuccess(c, userVO, "更新成功")
}

// DeleteUser 删除用户
// @Summary      删除用户
// @Description  软删除指定用户。只能删除自己的账户。
// @Tags         users (用户)
// @Security     BearerAuth
// @Param        user_id path uint64 true "用户ID" minimum(1)
// @Success      204 "删除成功，无响应体"
// @Failure      400 {object} response.APIResponse[any] "无效的路径参数"
// @Failure      401 {object} response.APIResponse[any] "未认证"
// @Failure      403 {object} response.APIResponse[any] "不能删除其他用户的账户"
// @Failure      404 {object} response.APIResponse[any] "用户不存在"
// @Router       /api/users/{user_id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	userID, ok := parsePathID(c, "user_id")
	if !ok {
		return
	}
	callerID, ok := getCallerID(c)
	if !ok {
		return
	}

	if userID != callerID {
		respondServiceError(c, myErrors.ErrForbidden)
		return
	}

	if err := ctrl.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}

// RegisterRoutes 注册 UserController 的路由
// - public 组不经过认证中间件，authed 组经过认证中间件。
func (ctrl *UserController) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.POST("/users", ctrl.Register)
	public.POST("/users/login", ctrl.Login)

	users := authed.Group("/users")
	{
		users.GET("", ctrl.ListUsers)
		users.GET("/me", ctrl.GetMe)
		users.GET("/:user_id", ctrl.GetUserByID)
		users.PUT("/:user_id", ctrl.UpdateUser)
		users.DELETE("/:user_id", ctrl.DeleteUser)
	}
}
