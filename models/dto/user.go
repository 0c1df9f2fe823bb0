package dto

import "github.com/Xushengqwer/blog_service/models/enums"

// RegisterUserRequest 定义了用户注册的请求数据结构
// - 添加了 binding 标签用于输入验证
type RegisterUserRequest struct {
	Username string         `json:"username" binding:"required,min=3,max=20"` // 用户名，必填，3-20字符
	Password string         `json:"password" binding:"required,min=6"`        // 密码，必填，至少6字符
	Email    string         `json:"email" binding:"required,email"`           // 邮箱，必填，需为有效格式
	Role     enums.UserRole `json:"role" binding:"required,oneof=admin user"` // 角色，必填，admin 或 user
}

// LoginRequest 定义了用户登录的请求数据结构
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest 定义了用户信息稀疏更新的请求数据结构
// - 指针字段区分 "未提供" 与 "提供了零值"，只有显式提供的字段才会被更新
type UpdateUserRequest struct {
	Username *string         `json:"username" binding:"omitempty,min=3,max=20"`
	Password *string         `json:"password" binding:"omitempty,min=6"` // 提供时会在服务层重新哈希后落库
	Email    *string         `json:"email" binding:"omitempty,email"`
	Role     *enums.UserRole `json:"role" binding:"omitempty,oneof=admin user"`
}
