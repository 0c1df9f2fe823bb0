package dto

// CreatePostRequest 定义了创建帖子的请求数据结构
// - 作者不在请求体内：帖子归属永远取自已认证的调用方，不信任客户端提供的作者字段
type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=100"` // 帖子标题，必填，最大100字符
	Content string `json:"content" binding:"required,min=1"`       // 帖子正文，必填
}

// UpdatePostRequest 定义了帖子稀疏更新的请求数据结构
type UpdatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=100"`
	Content *string `json:"content" binding:"omitempty,min=1"`
}

// ListPostsRequest 定义了帖子分页查询的请求数据结构
// - limit 缺省 100，上限 100；offset 缺省 0
type ListPostsRequest struct {
	Limit  int `form:"limit,default=100" binding:"omitempty,gte=1,lte=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}
