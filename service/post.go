package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// PostService 定义了帖子相关的业务逻辑接口。
type PostService interface {
	// CreatePost 以调用方身份发布一篇新帖子。
	// - 帖子归属永远取自已认证的调用方，浏览量从 0 开始。
	CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostRequest) (*vo.PostVO, error)

	// ListPosts 分页查询帖子列表，最新在前。列表浏览不计入浏览量。
	ListPosts(ctx context.Context, limit, offset int) ([]*vo.PostVO, error)

	// GetPostByID 获取帖子详情，并把本次浏览计入浏览量。
	// - 返回的浏览量是包含本次浏览的最新值。
	GetPostByID(ctx context.Context, id uint64) (*vo.PostVO, error)

	// UpdatePost 更新帖子的标题与正文。
	// - 检查顺序为 存在性 -> 所有权 -> 变更：帖子不存在返回 myErrors.ErrPostNotFound，
	//   调用方不是作者返回 myErrors.ErrForbidden，任何数据都不会被改动。
	UpdatePost(ctx context.Context, callerID, postID uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error)

	// DeletePost 软删除指定帖子，仅限作者本人。
	DeletePost(ctx context.Context, callerID, postID uint64) error
}

// postService 是 PostService 的实现。
type postService struct {
	db       *gorm.DB
	postRepo mysql.PostRepository
	logger   *core.ZapLogger
}

// NewPostService 是 postService 的构造函数。
func NewPostService(db *gorm.DB, postRepo mysql.PostRepository, logger *core.ZapLogger) PostService {
	return &postService{
		db:       db,
		postRepo: postRepo,
		logger:   logger,
	}
}

// CreatePost 实现帖子的发布。
func (s *postService) CreatePost(ctx context.Context, userID uint64, req *dto.CreatePostRequest) (*vo.PostVO, error) {
	post := &entities.Post{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.postRepo.CreatePost(ctx, s.db, post); err != nil {
		s.logger.Error("创建帖子数据库操作失败", zap.Uint64("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("创建帖子失败: %w", err)
	}

	s.logger.Info("帖子发布成功", zap.Uint64("postID", post.ID), zap.Uint64("userID", userID))
	return vo.NewPostVOFromEntity(post), nil
}

// ListPosts 实现帖子的分页查询。
func (s *postService) ListPosts(ctx context.Context, limit, offset int) ([]*vo.PostVO, error) {
	posts, err := s.postRepo.ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("获取帖子列表失败: %w", err)
	}
	return vo.MapPostsToVOs(posts), nil
}

// GetPostByID 实现帖子详情查询与浏览量计数。
func (s *postService) GetPostByID(ctx context.Context, id uint64) (*vo.PostVO, error) {
	// 先自增再读取，返回值里总能看到本次浏览。
	// 自增是单条原子 UPDATE，并发访问同一帖子不会丢计数。
	if err := s.postRepo.IncrementViewCount(ctx, id); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("帖子浏览量自增失败: %w", err)
	}

	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			// 自增与读取之间帖子被删除，按不存在处理。
			return nil, myErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("获取帖子失败: %w", err)
	}

	return vo.NewPostVOFromEntity(post), nil
}

// UpdatePost 实现帖子的更新。
func (s *postService) UpdatePost(ctx context.Context, callerID, postID uint64, req *dto.UpdatePostRequest) (*vo.PostVO, error) {
	// 1. 存在性检查。
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("获取帖子失败: %w", err)
	}

	// 2. 所有权检查。
	if post.UserID != callerID {
		s.logger.Warn("更新帖子被拒绝，调用方不是作者",
			zap.Uint64("postID", postID),
			zap.Uint64("callerID", callerID),
			zap.Uint64("ownerID", post.UserID),
		)
		return nil, myErrors.ErrForbidden
	}

	// 3. 执行变更。
	if err := s.postRepo.UpdatePost(ctx, postID, req.Title, req.Content); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("更新帖子失败: %w", err)
	}

	updated, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("读取更新后的帖子失败: %w", err)
	}

	s.logger.Info("帖子更新成功", zap.Uint64("postID", postID), zap.Uint64("userID", callerID))
	return vo.NewPostVOFromEntity(updated), nil
}

// DeletePost 实现帖子的软删除。
func (s *postService) DeletePost(ctx context.Context, callerID, postID uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrPostNotFound
		}
		return fmt.Errorf("获取帖子失败: %w", err)
	}

	if post.UserID != callerID {
		s.logger.Warn("删除帖子被拒绝，调用方不是作者",
			zap.Uint64("postID", postID),
			zap.Uint64("callerID", callerID),
		)
		return myErrors.ErrForbidden
	}

	if err := s.postRepo.DeletePost(ctx, s.db, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrPostNotFound
		}
		return fmt.Errorf("删除帖子失败: %w", err)
	}

	s.logger.Info("帖子已软删除", zap.Uint64("postID", postID), zap.Uint64("userID", callerID))
	return nil
}
