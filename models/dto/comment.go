package dto

// CreateCommentRequest 定义了创建评论的请求数据结构
// - 评论归属取自已认证的调用方；post_id 指向的父帖子必须存在且未被软删除
type CreateCommentRequest struct {
	PostID  uint64 `json:"post_id" binding:"required,gt=0"`
	Content string `json:"content" binding:"required,min=1"`
}

// UpdateCommentRequest 定义了更新评论的请求数据结构
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}
