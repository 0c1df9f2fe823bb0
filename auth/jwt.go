package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/myErrors"
)

// defaultExpireMinutes 配置缺省时的令牌有效期（分钟）
const defaultExpireMinutes = 30

// Claims 访问令牌携带的身份声明
// - 除注册声明外只携带用户ID与用户名，权限判定一律回源数据库，
//   令牌里不存角色，避免角色变更后旧令牌越权
type Claims struct {
	UserID   uint64 `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenManager 负责访问令牌的签发与校验 (HS256 对称签名)
// - 纯函数式组件：除共享密钥与时钟外不依赖任何外部状态
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager 根据配置构造 TokenManager
func NewTokenManager(cfg *appConfig.JWTConfig) *TokenManager {
	minutes := cfg.ExpireMinutes
	if minutes <= 0 {
		minutes = defaultExpireMinutes
	}
	return &TokenManager{
		secret: []byte(cfg.SecretKey),
		issuer: cfg.Issuer,
		ttl:    time.Duration(minutes) * time.Minute,
	}
}

// IssueToken 为指定用户签发访问令牌
// - 绝对过期时间 = 签发时间 + 配置的有效期
func (m *TokenManager) IssueToken(userID uint64, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseToken 校验令牌签名与有效期并返回声明
// - 签名错误、格式错误、已过期统一返回 myErrors.ErrInvalidToken，
//   调用方无法（也不应）区分具体失败原因
func (m *TokenManager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, myErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, myErrors.ErrInvalidToken
	}
	return claims, nil
}
