package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/myErrors"
)

func newTestTokenManager(expireMinutes int) *TokenManager {
	return NewTokenManager(&appConfig.JWTConfig{
		SecretKey:     "test-secret-key",
		Issuer:        "blog_service_test",
		ExpireMinutes: expireMinutes,
	})
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	manager := newTestTokenManager(30)

	tokenString, err := manager.IssueToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := manager.ParseToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "blog_service_test", claims.Issuer)

	// 过期时间应约等于 签发时间 + 30 分钟
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(30*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	// 配置未提供有效期时回退到默认的 30 分钟
	manager := newTestTokenManager(0)

	tokenString, err := manager.IssueToken(1, "bob")
	require.NoError(t, err)

	claims, err := manager.ParseToken(tokenString)
	require.NoError(t, err)
	assert.WithinDuration(t, claims.IssuedAt.Add(30*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestTokenManager_ParseExpiredToken(t *testing.T) {
	manager := newTestTokenManager(30)

	// 手工构造一个已过期的令牌，使用相同的密钥签名
	now := time.Now()
	claims := Claims{
		UserID:   7,
		Username: "carol",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "blog_service_test",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
	require.NoError(t, err)

	_, err = manager.ParseToken(tokenString)
	assert.ErrorIs(t, err, myErrors.ErrInvalidToken)
}

func TestTokenManager_ParseWrongSecret(t *testing.T) {
	manager := newTestTokenManager(30)
	other := NewTokenManager(&appConfig.JWTConfig{
		SecretKey:     "a-different-secret",
		Issuer:        "blog_service_test",
		ExpireMinutes: 30,
	})

	tokenString, err := other.IssueToken(9, "dave")
	require.NoError(t, err)

	_, err = manager.ParseToken(tokenString)
	assert.ErrorIs(t, err, myErrors.ErrInvalidToken)
}

func TestTokenManager_ParseTamperedToken(t *testing.T) {
	manager := newTestTokenManager(30)

	tokenString, err := manager.IssueToken(3, "erin")
	require.NoError(t, err)

	// 破坏签名部分
	tampered := tokenString[:len(tokenString)-2] + "xx"
	_, err = manager.ParseToken(tampered)
	assert.ErrorIs(t, err, myErrors.ErrInvalidToken)
}

func TestTokenManager_ParseMalformedToken(t *testing.T) {
	manager := newTestTokenManager(30)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := manager.ParseToken(input)
		assert.ErrorIs(t, err, myErrors.ErrInvalidToken, "input: %q", input)
	}
}
