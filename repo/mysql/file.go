package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// FileRepository 定义了附件元数据在 MySQL 中的持久化操作接口。
// 附件的字节内容存放在 COS，本仓库只负责元数据行。
type FileRepository interface {
	// CreateFile 持久化一条附件元数据。
	// - 与 COS 字节上传组成一个逻辑上的原子单元：元数据事务失败时，
	//   服务层负责删除已上传的 COS 对象作为补偿。
	CreateFile(ctx context.Context, db *gorm.DB, file *entities.File) error

	// GetFileByID 根据主键检索未软删除的附件元数据。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetFileByID(ctx context.Context, id uint64) (*entities.File, error)

	// ListFilesByPostID 返回指定帖子下全部未软删除的附件元数据。
	ListFilesByPostID(ctx context.Context, postID uint64) ([]*entities.File, error)

	// DeleteFile 对指定附件元数据执行软删除（COS 中的字节保留）。
	DeleteFile(ctx context.Context, db *gorm.DB, id uint64) error
}

type fileRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewFileRepository 是 fileRepository 的构造函数。
func NewFileRepository(db *gorm.DB, logger *core.ZapLogger) FileRepository {
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *fileRepository) CreateFile(ctx context.Context, db *gorm.DB, file *entities.File) error {
	if err := db.WithContext(ctx).Create(file).Error; err != nil {
		return err
	}
	return nil
}

func (r *fileRepository) GetFileByID(ctx context.Context, id uint64) (*entities.File, error) {
	var file entities.File
	err := r.db.WithContext(ctx).First(&file, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取附件元数据数据库查询失败", zap.Uint64("fileID", id), zap.Error(err))
		return nil, err
	}
	return &file, nil
}

func (r *fileRepository) ListFilesByPostID(ctx context.Context, postID uint64) ([]*entities.File, error) {
	var files []*entities.File
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("id ASC").
		Find(&files).Error
	if err != nil {
		r.logger.Error("获取帖子附件列表数据库查询失败", zap.Uint64("postID", postID), zap.Error(err))
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) DeleteFile(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.File{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
