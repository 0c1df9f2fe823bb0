package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// CommentVO 定义了评论信息的响应数据结构
type CommentVO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"post_id"`
	UserID    uint64    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCommentVOFromEntity 将评论实体转换为响应 VO
func NewCommentVOFromEntity(comment *entities.Comment) *CommentVO {
	if comment == nil {
		return nil
	}
	return &CommentVO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// MapCommentsToVOs 将评论实体列表转换为响应VO列表。
func MapCommentsToVOs(comments []*entities.Comment) []*CommentVO {
	if len(comments) == 0 {
		return []*CommentVO{}
	}
	vos := make([]*CommentVO, 0, len(comments))
	for _, comment := range comments {
		if comment == nil {
			continue
		}
		vos = append(vos, NewCommentVOFromEntity(comment))
	}
	return vos
}
