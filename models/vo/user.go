package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
	"github.com/Xushengqwer/blog_service/models/enums"
)

// UserVO 定义了用户信息的响应数据结构
// - 该结构体刻意不包含密码字段：密码哈希在任何响应中都不允许出现
type UserVO struct {
	ID        uint64         `json:"id"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Role      enums.UserRole `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TokenVO 定义了登录成功后的令牌响应结构
type TokenVO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // 固定为 "bearer"
}

// NewUserVOFromEntity 将用户实体转换为响应 VO（剥离密码）
func NewUserVOFromEntity(user *entities.User) *UserVO {
	if user == nil {
		return nil
	}
	return &UserVO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapUsersToVOs 将用户实体列表转换为响应VO列表。
func MapUsersToVOs(users []*entities.User) []*UserVO {
	if len(users) == 0 {
		return []*UserVO{} // 返回空切片而不是nil，便于前端处理
	}
	vos := make([]*UserVO, 0, len(users))
	for _, user := range users {
		if user == nil {
			continue
		}
		vos = append(vos, NewUserVOFromEntity(user))
	}
	return vos
}
