package myErrors

import "errors"

// 领域层错误
// - 服务层把仓库层错误翻译成以下哨兵错误，控制器据此映射 HTTP 状态码。
// - "未找到" 与 "无权限" 必须保持可区分，这是所有写路径的前置检查顺序
//   （存在性 -> 所有权 -> 变更）能正确上报的基础。
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrFileNotFound    = errors.New("file not found")

	// ErrForbidden 已认证但不是目标资源的作者
	ErrForbidden = errors.New("not authorized to operate on this resource")

	// ErrUserAlreadyExists / ErrEmailAlreadyExists 注册时的唯一性冲突（只统计未软删除的行）
	ErrUserAlreadyExists  = errors.New("username already registered")
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials 登录失败，不区分 "用户不存在" 和 "密码错误"
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInvalidToken 令牌校验失败，签名错误/格式错误/已过期统一归并为该错误
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrFileTooLarge 上传文件超过配置的大小上限
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
)
