package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// FileVO 定义了附件元数据的响应数据结构
// - 不暴露 ObjectKey：存储路径是内部实现细节，调用方通过下载接口取字节
type FileVO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"post_id"`
	FileName  string    `json:"file_name"` // 上传时的原始文件名
	FileSize  int64     `json:"file_size"` // 字节数
	CreatedAt time.Time `json:"created_at"`
}

// NewFileVOFromEntity 将附件实体转换为响应 VO
func NewFileVOFromEntity(file *entities.File) *FileVO {
	if file == nil {
		return nil
	}
	return &FileVO{
		ID:        file.ID,
		PostID:    file.PostID,
		FileName:  file.FileName,
		FileSize:  file.FileSize,
		CreatedAt: file.CreatedAt,
	}
}

// MapFilesToVOs 将附件实体列表转换为响应VO列表。
func MapFilesToVOs(files []*entities.File) []*FileVO {
	if len(files) == 0 {
		return []*FileVO{}
	}
	vos := make([]*FileVO, 0, len(files))
	for _, file := range files {
		if file == nil {
			continue
		}
		vos = append(vos, NewFileVOFromEntity(file))
	}
	return vos
}
