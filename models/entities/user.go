package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// User 用户实体
// - 使用场景: 表示注册用户，存储登录凭证（密码哈希）、邮箱和角色
// - 表名: users (GORM 默认使用结构体名复数形式)
type User struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 用户名，必填，唯一
	// - 类型: varchar(20)
	// - 唯一性约束只对未软删除的行生效，由服务层在注册时检查（GORM 的唯一索引无法排除 deleted_at）
	Username string `gorm:"type:varchar(20);not null;index"`

	// 密码哈希，bcrypt 输出固定为 60 字符
	// - 注意: 该字段绝不允许出现在任何 VO / JSON 响应中，序列化统一标记 json:"-"
	Password string `gorm:"type:varchar(60);not null" json:"-"`

	// 邮箱，必填，在未软删除的行中唯一
	Email string `gorm:"type:varchar(100);not null;index"`

	// 角色，枚举: admin / user
	// - 类型: varchar(10)，直接存储枚举字符串，便于排查问题
	Role enums.UserRole `gorm:"type:varchar(10);not null"`
}
