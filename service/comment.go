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

// CommentService 定义了评论相关的业务逻辑接口。
type CommentService interface {
	// CreateComment 以调用方身份在指定帖子下发表评论。
	// - 父帖子必须存在且未被软删除，否则返回 myErrors.ErrPostNotFound，
	//   不会留下任何评论数据。
	CreateComment(ctx context.Context, userID uint64, req *dto.CreateCommentRequest) (*vo.CommentVO, error)

	// GetCommentByID 获取单条评论详情。
	GetCommentByID(ctx context.Context, id uint64) (*vo.CommentVO, error)

	// ListCommentsByPostID 返回指定帖子下的全部评论，按发表顺序升序。
	// - 父帖子不存在或已被软删除时返回 myErrors.ErrPostNotFound，
	//   而不是一个空列表，调用方可以据此区分 "没有评论" 和 "帖子不存在"。
	ListCommentsByPostID(ctx context.Context, postID uint64) ([]*vo.CommentVO, error)

	// UpdateComment 更新评论内容，仅限评论作者本人。
	UpdateComment(ctx context.Context, callerID, commentID uint64, req *dto.UpdateCommentRequest) (*vo.CommentVO, error)

	// DeleteComment 软删除指定评论，仅限评论作者本人。
	DeleteComment(ctx context.Context, callerID, commentID uint64) error
}

// commentService 是 CommentService 的实现。
type commentService struct {
	db          *gorm.DB
	commentRepo mysql.CommentRepository
	postRepo    mysql.PostRepository
	logger      *core.ZapLogger
}

// NewCommentService 是 commentService 的构造函数。
func NewCommentService(
	db *gorm.DB,
	commentRepo mysql.CommentRepository,
	postRepo mysql.PostRepository,
	logger *core.ZapLogger,
) CommentService {
	return &commentService{
		db:          db,
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

// ensurePostExists 校验父帖子存在且未被软删除。
func (s *commentService) ensurePostExists(ctx context.Context, postID uint64) error {
	if _, err := s.postRepo.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrPostNotFound
		}
		return fmt.Errorf("检查父帖子失败: %w", err)
	}
	return nil
}

// CreateComment 实现评论的发表。
func (s *commentService) CreateComment(ctx context.Context, userID uint64, req *dto.CreateCommentRequest) (*vo.CommentVO, error) {
	// 先确认父帖子还活着，再写评论。
	if err := s.ensurePostExists(ctx, req.PostID); err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		PostID:  req.PostID,
		UserID:  userID,
		Content: req.Content,
	}

	if err := s.commentRepo.CreateComment(ctx, s.db, comment); err != nil {
		s.logger.Error("创建评论数据库操作失败",
			zap.Uint64("postID", req.PostID),
			zap.Uint64("userID", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}

	s.logger.Info("评论发表成功",
		zap.Uint64("commentID", comment.ID),
		zap.Uint64("postID", req.PostID),
		zap.Uint64("userID", userID),
	)
	return vo.NewCommentVOFromEntity(comment), nil
}

// GetCommentByID 实现评论详情查询。
func (s *commentService) GetCommentByID(ctx context.Context, id uint64) (*vo.CommentVO, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("获取评论失败: %w", err)
	}
	return vo.NewCommentVOFromEntity(comment), nil
}

// ListCommentsByPostID 实现帖子评论列表查询。
func (s *commentService) ListCommentsByPostID(ctx context.Context, postID uint64) ([]*vo.CommentVO, error) {
	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("获取帖子评论列表失败: %w", err)
	}
	return vo.MapCommentsToVOs(comments), nil
}

// UpdateComment 实现评论的更新。
func (s *commentService) UpdateComment(ctx context.Context, callerID, commentID uint64, req *dto.UpdateCommentRequest) (*vo.CommentVO, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("获取评论失败: %w", err)
	}

	if comment.UserID != callerID {
		s.logger.Warn("更新评论被拒绝，调用方不是作者",
			zap.Uint64("commentID", commentID),
			zap.Uint64("callerID", callerID),
		)
		return nil, myErrors.ErrForbidden
	}

	if err := s.commentRepo.UpdateComment(ctx, commentID, req.Content); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("更新评论失败: %w", err)
	}

	updated, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("读取更新后的评论失败: %w", err)
	}

	s.logger.Info("评论更新成功", zap.Uint64("commentID", commentID), zap.Uint64("userID", callerID))
	return vo.NewCommentVOFromEntity(updated), nil
}

// DeleteComment 实现评论的软删除。
func (s *commentService) DeleteComment(ctx context.Context, callerID, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrCommentNotFound
		}
		return fmt.Errorf("获取评论失败: %w", err)
	}

	if comment.UserID != callerID {
		s.logger.Warn("删除评论被拒绝，调用方不是作者",
			zap.Uint64("commentID", commentID),
			zap.Uint64("callerID", callerID),
		)
		return myErrors.ErrForbidden
	}

	if err := s.commentRepo.DeleteComment(ctx, s.db, commentID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrCommentNotFound
		}
		return fmt.Errorf("删除评论失败: %w", err)
	}

	s.logger.Info("评论已软删除", zap.Uint64("commentID", commentID), zap.Uint64("userID", callerID))
	return nil
}
