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

// PostRepository 定义了帖子数据在 MySQL 中的持久化操作接口。
type PostRepository interface {
	// CreatePost 持久化一个新的帖子记录。
	// - 这是帖子生命周期的起点，对应用户发布帖子的操作。
	CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error

	// GetPostByID 根据单个 ID 检索未软删除的帖子。
	// - 如果未找到帖子，返回 commonerrors.ErrRepoNotFound。
	GetPostByID(ctx context.Context, id uint64) (*entities.Post, error)

	// ListPosts 分页查询帖子列表，按创建时间降序（最新在前），ID 作为次级排序保证稳定。
	ListPosts(ctx context.Context, limit, offset int) ([]*entities.Post, error)

	// UpdatePost 稀疏更新帖子的标题与正文。
	// - 传入 nil 表示不更新对应字段；总是会自动更新帖子的修改时间 (updated_at)。
	// - 作者字段不在可更新范围内：帖子归属自创建起不可变。
	UpdatePost(ctx context.Context, id uint64, title *string, content *string) error

	// IncrementViewCount 原子性地将帖子浏览量加一。
	// - 通过单条 UPDATE ... SET view_count = view_count + 1 实现，
	//   并发调用不会丢失更新（不做读-改-写）。
	// - 目标行不存在或已被软删除时返回 commonerrors.ErrRepoNotFound。
	IncrementViewCount(ctx context.Context, id uint64) error

	// DeletePost 对指定帖子执行软删除。
	// - 软删除通过 GORM 的约定（填充 deleted_at 字段）实现，数据可追溯。
	DeletePost(ctx context.Context, db *gorm.DB, id uint64) error
}

// postRepository 是 PostRepository 接口针对 MySQL 的具体实现。
type postRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPostRepository 是 postRepository 的构造函数。
func NewPostRepository(db *gorm.DB, logger *core.ZapLogger) PostRepository {
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost 实现帖子的数据库插入操作。
func (r *postRepository) CreatePost(ctx context.Context, db *gorm.DB, post *entities.Post) error {
	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		return err
	}
	// 创建成功后，post 对象会包含 GORM 自动生成的 ID 和时间戳。
	return nil
}

// GetPostByID 实现根据单个 ID 获取帖子。
func (r *postRepository) GetPostByID(ctx context.Context, id uint64) (*entities.Post, error) {
	var post entities.Post

	// First 会自动添加 "WHERE id = ?"、"LIMIT 1" 以及软删除过滤条件。
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取帖子未找到", zap.Uint64("postID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取帖子数据库查询失败", zap.Uint64("postID", id), zap.Error(err))
		return nil, err
	}

	return &post, nil
}

// ListPosts 实现帖子的分页查询。
func (r *postRepository) ListPosts(ctx context.Context, limit, offset int) ([]*entities.Post, error) {
	var posts []*entities.Post

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		r.logger.Error("分页获取帖子列表数据库查询失败",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, err
	}

	return posts, nil
}

// UpdatePost 实现帖子标题与正文的稀疏更新。
func (r *postRepository) UpdatePost(ctx context.Context, id uint64, title *string, content *string) error {
	updateMap := make(map[string]interface{})

	if title != nil {
		updateMap["title"] = *title
	}
	if content != nil {
		updateMap["content"] = *content
	}

	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新帖子 (所有可选参数均为nil)",
			zap.Uint64("postID", id),
		)
		return nil
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新帖子数据库操作失败", zap.Error(result.Error), zap.Uint64("postID", id))
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新帖子但未找到记录或记录已被删除", zap.Uint64("postID", id))
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// IncrementViewCount 实现浏览量的原子自增。
func (r *postRepository) IncrementViewCount(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Post{}).
		Where("id = ? AND deleted_at IS NULL", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))

	if result.Error != nil {
		r.logger.Error("帖子浏览量自增数据库操作失败", zap.Error(result.Error), zap.Uint64("postID", id))
		return result.Error
	}

	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// DeletePost 实现帖子的软删除。
// db 参数是执行此操作的数据库句柄 (可以是普通连接，也可以是事务 tx)。
func (r *postRepository) DeletePost(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
