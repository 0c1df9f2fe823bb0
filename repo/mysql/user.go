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
	"github.com/Xushengqwer/blog_service/models/enums"
)

// UserRepository 定义了用户数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type UserRepository interface {
	// CreateUser 持久化一个新的用户记录。
	// - db 参数允许传入事务对象 tx，以便与其他写操作组成原子单元。
	CreateUser(ctx context.Context, db *gorm.DB, user *entities.User) error

	// GetUserByID 根据主键检索未软删除的用户。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetUserByID(ctx context.Context, id uint64) (*entities.User, error)

	// GetUserByUsername 根据用户名检索未软删除的用户。
	// - 返回的实体包含密码哈希，供登录校验使用；调用方负责在出服务层前剥离。
	// - 如果未找到，返回 commonerrors.ErrRepoNotFound。
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)

	// GetUserByEmail 根据邮箱检索未软删除的用户。
	// - 注册时用于邮箱唯一性检查。
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)

	// ListUsers 返回全部未软删除的用户，按创建时间降序。
	ListUsers(ctx context.Context) ([]*entities.User, error)

	// UpdateUser 稀疏更新用户信息。
	// - 传入 nil 表示不更新对应字段；总是会自动更新 updated_at。
	// - 目标行不存在或已被软删除时返回 commonerrors.ErrRepoNotFound。
	UpdateUser(ctx context.Context, id uint64, username *string, password *string, email *string, role *enums.UserRole) error

	// DeleteUser 对指定用户执行软删除。
	// - 软删除通过 GORM 的约定（填充 deleted_at 字段）实现，数据本身仍在数据库中。
	DeleteUser(ctx context.Context, db *gorm.DB, id uint64) error
}

// userRepository 是 UserRepository 接口针对 MySQL 的具体实现。
type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser 实现用户的数据库插入操作。
func (r *userRepository) CreateUser(ctx context.Context, db *gorm.DB, user *entities.User) error {
	// GORM 会自动填充 BaseModel 中的 CreatedAt 和 UpdatedAt 字段。
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}
	return nil
}

// GetUserByID 实现根据主键获取用户。
// BaseModel 的 DeletedAt 使 GORM 在查询时自动追加 deleted_at IS NULL 条件。
func (r *userRepository) GetUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("根据 ID 获取用户未找到", zap.Uint64("userID", id))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据 ID 获取用户数据库查询失败", zap.Uint64("userID", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername 实现根据用户名获取用户。
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据用户名获取用户数据库查询失败", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail 实现根据邮箱获取用户。
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("根据邮箱获取用户数据库查询失败", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// ListUsers 实现获取全部未软删除用户。
func (r *userRepository) ListUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&users).Error
	if err != nil {
		r.logger.Error("获取用户列表数据库查询失败", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// UpdateUser 实现用户信息的稀疏更新。
// 参数为指针类型，如果传入 nil，则对应字段不会被更新。
func (r *userRepository) UpdateUser(ctx context.Context, id uint64, username *string, password *string, email *string, role *enums.UserRole) error {
	updateMap := make(map[string]interface{})

	if username != nil {
		updateMap["username"] = *username
	}
	if password != nil {
		updateMap["password"] = *password
	}
	if email != nil {
		updateMap["email"] = *email
	}
	if role != nil {
		updateMap["role"] = *role
	}

	// 检查是否有任何字段需要更新。
	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新用户 (所有可选参数均为nil)",
			zap.Uint64("userID", id),
		)
		return nil
	}

	// 总是更新 updated_at 字段
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(updateMap)

	if result.Error != nil {
		r.logger.Error("更新用户数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("userID", id),
		)
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新用户但未找到记录或记录已被删除", zap.Uint64("userID", id))
		return commonerrors.ErrRepoNotFound
	}

	return nil
}

// DeleteUser 实现用户的软删除。
// db 参数是执行此操作的数据库句柄 (可以是普通连接，也可以是事务 tx)。
func (r *userRepository) DeleteUser(ctx context.Context, db *gorm.DB, id uint64) error {
	result := db.WithContext(ctx).Delete(&entities.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
