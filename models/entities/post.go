package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// Post 帖子实体
// - 使用场景: 表示博客帖子，存储标题、正文、浏览量和作者外键
// - 表名: posts (GORM 默认使用结构体名复数形式)
type Post struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 作者ID，关联用户表，外键
	// - 帖子创建后作者不可变更，服务层不会把该字段纳入任何补丁更新
	UserID uint64 `gorm:"type:bigint;not null;index"`

	// 标题，必填，最大长度100个字符
	Title string `gorm:"type:varchar(100);not null"`

	// 正文，支持多行文本，存储为 TEXT 类型
	Content string `gorm:"type:text;not null"`

	// 浏览量，统计帖子的浏览次数
	// - 只通过原子的 UPDATE ... view_count = view_count + 1 递增，永不回退
	ViewCount int64 `gorm:"type:bigint;default:0"`
}
