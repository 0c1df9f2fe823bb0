package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// PostVO 定义了帖子信息的响应数据结构
type PostVO struct {
	ID        uint64    `json:"id"`         // 帖子ID
	UserID    uint64    `json:"user_id"`    // 作者ID
	Title     string    `json:"title"`      // 帖子标题
	Content   string    `json:"content"`    // 帖子正文
	ViewCount int64     `json:"view_count"` // 浏览量
	CreatedAt time.Time `json:"created_at"` // 创建时间
	UpdatedAt time.Time `json:"updated_at"` // 更新时间
}

// NewPostVOFromEntity 将帖子实体转换为响应 VO
func NewPostVOFromEntity(post *entities.Post) *PostVO {
	if post == nil {
		return nil
	}
	return &PostVO{
		ID:        post.ID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		ViewCount: post.ViewCount,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// MapPostsToVOs 将帖子实体列表转换为响应VO列表。
func MapPostsToVOs(posts []*entities.Post) []*PostVO {
	if len(posts) == 0 {
		return []*PostVO{}
	}
	vos := make([]*PostVO, 0, len(posts))
	for _, post := range posts {
		if post == nil { // 安全检查，尽管不太可能发生
			continue
		}
		vos = append(vos, NewPostVOFromEntity(post))
	}
	return vos
}
