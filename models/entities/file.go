package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
)

// File 附件实体
// - 表名: files
// - 关系: 属于一个 Post；附件本身没有独立的作者字段，
//   上传/删除的权限统一通过父帖子的作者判定
type File struct {
	entities.BaseModel

	// 父帖子ID，外键
	PostID uint64 `gorm:"type:bigint;not null;index"`

	// 用户上传时的原始文件名，仅作为元数据保留（下载时作为附件名返回）
	FileName string `gorm:"type:varchar(260);not null"`

	// 文件字节在 COS 中的 ObjectKey，与原始文件名解耦，由服务层用 UUID 生成以避免碰撞
	ObjectKey string `gorm:"type:varchar(512);not null;index"`

	// 文件大小 (单位：字节)
	FileSize int64 `gorm:"type:bigint;not null"`
}
