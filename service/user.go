package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Xushengqwer/blog_service/auth"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/vo"
	"github.com/Xushengqwer/blog_service/myErrors"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// dummyPasswordHash 是一个固定的 bcrypt 哈希（对应某个随机口令）。
// 用户名不存在时也对它执行一次比较，使 "用户不存在" 与 "密码错误"
// 两条失败路径的耗时接近，避免通过响应时间枚举用户名。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService 定义了用户相关的业务逻辑接口。
type UserService interface {
	// Register 注册一个新用户。
	// - 用户名或邮箱与现存未软删除用户冲突时分别返回
	//   myErrors.ErrUserAlreadyExists / myErrors.ErrEmailAlreadyExists。
	// - 密码以 bcrypt 哈希形式落库，原文不做任何持久化。
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*vo.UserVO, error)

	// Login 校验用户名与密码，成功后签发访问令牌。
	// - 用户不存在与密码错误统一返回 myErrors.ErrInvalidCredentials。
	Login(ctx context.Context, req *dto.LoginRequest) (*vo.TokenVO, error)

	// ListUsers 返回全部未软删除的用户。
	ListUsers(ctx context.Context) ([]*vo.UserVO, error)

	// GetUserByID 根据主键获取用户详情。
	GetUserByID(ctx context.Context, id uint64) (*vo.UserVO, error)

	// UpdateUser 稀疏更新用户信息，只更新请求中显式提供的字段。
	// - 提供了密码时会重新执行 bcrypt 哈希。
	// - 更新后的用户名或邮箱与其他用户冲突时返回对应的冲突错误。
	UpdateUser(ctx context.Context, id uint64, req *dto.UpdateUserRequest) (*vo.UserVO, error)

	// DeleteUser 软删除指定用户。
	// - 用户已发布的帖子与评论不做级联删除，保持可追溯。
	DeleteUser(ctx context.Context, id uint64) error
}

// userService 是 UserService 的实现。
type userService struct {
	db           *gorm.DB
	userRepo     mysql.UserRepository
	tokenManager *auth.TokenManager
	logger       *core.ZapLogger
}

// NewUserService 是 userService 的构造函数。
func NewUserService(
	db *gorm.DB,
	userRepo mysql.UserRepository,
	tokenManager *auth.TokenManager,
	logger *core.ZapLogger,
) UserService {
	return &userService{
		db:           db,
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register 实现用户注册逻辑。
func (s *userService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*vo.UserVO, error) {
	// 1. 唯一性检查：用户名与邮箱都只统计未软删除的行。
	if _, err := s.userRepo.GetUserByUsername(ctx, req.Username); err == nil {
		s.logger.Warn("注册被拒绝，用户名已存在", zap.String("username", req.Username))
		return nil, myErrors.ErrUserAlreadyExists
	} else if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		return nil, fmt.Errorf("检查用户名唯一性失败: %w", err)
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, req.Email); err == nil {
		s.logger.Warn("注册被拒绝，邮箱已存在", zap.String("email", req.Email))
		return nil, myErrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		return nil, fmt.Errorf("检查邮箱唯一性失败: %w", err)
	}

	// 2. 哈希密码。bcrypt 自带盐值，相同口令每次产生不同哈希。
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("生成密码哈希失败", zap.Error(err))
		return nil, fmt.Errorf("生成密码哈希失败: %w", err)
	}

	user := &entities.User{
		Username: req.Username,
		Password: string(hashed),
		Email:    req.Email,
		Role:     req.Role,
	}

	// 3. 落库。
	if err := s.userRepo.CreateUser(ctx, s.db, user); err != nil {
		s.logger.Error("创建用户数据库操作失败", zap.String("username", req.Username), zap.Error(err))
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	s.logger.Info("用户注册成功", zap.Uint64("userID", user.ID), zap.String("username", user.Username))
	return vo.NewUserVOFromEntity(user), nil
}

// Login 实现登录认证逻辑。
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*vo.TokenVO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			// 用户不存在时也做一次哈希比较，耗时与正常路径对齐。
			_ = bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte(req.Password))
			return nil, myErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("登录查询用户失败: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("登录失败，密码不匹配", zap.String("username", req.Username))
		return nil, myErrors.ErrInvalidCredentials
	}

	token, err := s.tokenManager.IssueToken(user.ID, user.Username)
	if err != nil {
		s.logger.Error("签发访问令牌失败", zap.Uint64("userID", user.ID), zap.Error(err))
		return nil, fmt.Errorf("签发访问令牌失败: %w", err)
	}

	s.logger.Info("用户登录成功", zap.Uint64("userID", user.ID), zap.String("username", user.Username))
	return &vo.TokenVO{AccessToken: token, TokenType: "bearer"}, nil
}

// ListUsers 实现用户列表查询。
func (s *userService) ListUsers(ctx context.Context) ([]*vo.UserVO, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取用户列表失败: %w", err)
	}
	return vo.MapUsersToVOs(users), nil
}

// GetUserByID 实现用户详情查询。
func (s *userService) GetUserByID(ctx context.Context, id uint64) (*vo.UserVO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("获取用户失败: %w", err)
	}
	return vo.NewUserVOFromEntity(user), nil
}

// UpdateUser 实现用户信息的稀疏更新。
func (s *userService) UpdateUser(ctx context.Context, id uint64, req *dto.UpdateUserRequest) (*vo.UserVO, error) {
	// 改用户名/邮箱时先做唯一性检查，冲突对象是自己时放行。
	if req.Username != nil {
		if existing, err := s.userRepo.GetUserByUsername(ctx, *req.Username); err == nil {
			if existing.ID != id {
				return nil, myErrors.ErrUserAlreadyExists
			}
		} else if !errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, fmt.Errorf("检查用户名唯一性失败: %w", err)
		}
	}
	if req.Email != nil {
		if existing, err := s.userRepo.GetUserByEmail(ctx, *req.Email); err == nil {
			if existing.ID != id {
				return nil, myErrors.ErrEmailAlreadyExists
			}
		} else if !errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, fmt.Errorf("检查邮箱唯一性失败: %w", err)
		}
	}

	// 密码字段传入的是原文，落库前重新哈希。
	var hashedPassword *string
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("更新用户时生成密码哈希失败", zap.Uint64("userID", id), zap.Error(err))
			return nil, fmt.Errorf("生成密码哈希失败: %w", err)
		}
		hashedStr := string(hashed)
		hashedPassword = &hashedStr
	}

	if err := s.userRepo.UpdateUser(ctx, id, req.Username, hashedPassword, req.Email, req.Role); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}

	// 重新读取以返回包含最新时间戳的完整视图。
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("读取更新后的用户失败: %w", err)
	}

	s.logger.Info("用户信息更新成功", zap.Uint64("userID", id))
	return vo.NewUserVOFromEntity(user), nil
}

// DeleteUser 实现用户的软删除。
func (s *userService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepo.DeleteUser(ctx, s.db, id); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return myErrors.ErrUserNotFound
		}
		return fmt.Errorf("删除用户失败: %w", err)
	}
	s.logger.Info("用户已软删除", zap.Uint64("userID", id))
	return nil
}
