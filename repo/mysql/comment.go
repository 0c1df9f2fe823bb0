package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// CommentRepository 定义了评论数据在 MySQL 中的持久化操作接口。
type CommentRepository interface {
	// CreateComment 持久化一个新的评论记录。
	CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error

	// GetCommentByID 根据主键检索未软删除的评论。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error)

	// ListCommentsByPostID 返回指定帖子下全部未软删除的评论，按创建顺序升序。
	ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error)

	// UpdateComment 更新评论内容，同时刷新 updated_at。
	// - 目标行不存在或已被软删除时返回 commonerrors.ErrRepoNotFound。
	UpdateComment(ctx context.Context, id uint64, content string) error

	// DeleteComment 对指定评论执行软删除。
	DeleteComment(ctx context.Context, db *gorm.DB, id uint64) error
}

type commentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *core.ZapLogger) CommentRepository {
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) CreateComment(ctx context.Context, db *gorm.DB, comment *entities.Comment) error {
	if err := db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, id uint64) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取评论数据库查询失败", zap.Uint64("commentID", id), zap.Error(err))
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListCommentsByPostID(ctx context.Context, postID uint64) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		r.logger.Error("获取帖子评论列表数据库查询失败", zap.Uint64("postID", postID), zap.Error(err))
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateComment(ctx context.Context, id uint64, content string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		r.logger.Error("更新评论数据库操作失败", zap.Error(result.Error), zap.Uint64("commentID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新评论但未找到记录或记录已被删除", zap.Uint64("commentID", id))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
