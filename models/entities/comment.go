package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Comment 评论实体
// - 表名: comments
// - 关系: 属于一个 Post 和一个 User；创建时要求父帖子存在且未被软删除
type Comment struct {
	entities.BaseModel

	// 父帖子ID，外键
	PostID uint64 `gorm:"type:bigint;not null;index"`

	// 作者ID，外键
	UserID uint64 `gorm:"type:bigint;not null;index"`

	// 评论内容
	Content string `gorm:"type:text;not null"`
}
