package enums

// UserRole 用户角色枚举
// - 直接以字符串形式持久化到 users.role 列
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// IsValid 校验角色取值是否在枚举范围内
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}
