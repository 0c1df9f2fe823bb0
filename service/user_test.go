package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Xushengqwer/blog_service/auth"
	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/models/dto"
	"github.com/Xushengqwer/blog_service/models/enums"
	"github.com/Xushengqwer/blog_service/myErrors"
)

func newUserServiceForTest(t *testing.T) (UserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	tokenManager := auth.NewTokenManager(&appConfig.JWTConfig{
		SecretKey:     "test-secret",
		Issuer:        "blog_service_test",
		ExpireMinutes: 30,
	})
	svc := NewUserService(nil, repo, tokenManager, newTestLogger(t))
	return svc, repo
}

func registerTestUser(t *testing.T, svc UserService, username, password, email string) uint64 {
	t.Helper()
	userVO, err := svc.Register(context.Background(), &dto.RegisterUserRequest{
		Username: username,
		Password: password,
		Email:    email,
		Role:     enums.RoleUser,
	})
	require.NoError(t, err)
	return userVO.ID
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc, repo := newUserServiceForTest(t)
	ctx := context.Background()

	userVO, err := svc.Register(ctx, &dto.RegisterUserRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "alice@example.com",
		Role:     enums.RoleUser,
	})
	require.NoError(t, err)
	assert.NotZero(t, userVO.ID)
	assert.Equal(t, "alice", userVO.Username)
	assert.Equal(t, enums.RoleUser, userVO.Role)

	// 落库的是 bcrypt 哈希而不是原文
	stored, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))

	tokenVO, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokenVO.AccessToken)
	assert.Equal(t, "bearer", tokenVO.TokenType)
}

func TestUserService_RegisterDuplicateUsername(t *testing.T) {
	svc, repo := newUserServiceForTest(t)
	ctx := context.Background()

	registerTestUser(t, svc, "alice", "secret123", "alice@example.com")

	_, err := svc.Register(ctx, &dto.RegisterUserRequest{
		Username: "alice",
		Password: "another-pass",
		Email:    "alice2@example.com",
		Role:     enums.RoleUser,
	})
	assert.ErrorIs(t, err, myErrors.ErrUserAlreadyExists)

	// 冲突时第一条记录保持原样
	stored, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	ctx := context.Background()

	registerTestUser(t, svc, "alice", "secret123", "shared@example.com")

	_, err := svc.Register(ctx, &dto.RegisterUserRequest{
		Username: "bob",
		Password: "secret456",
		Email:    "shared@example.com",
		Role:     enums.RoleUser,
	})
	assert.ErrorIs(t, err, myErrors.ErrEmailAlreadyExists)
}

func TestUserService_LoginFailures(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	ctx := context.Background()

	registerTestUser(t, svc, "alice", "secret123", "alice@example.com")

	// 密码错误与用户不存在返回同一个错误
	_, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "wrong-pass"})
	assert.ErrorIs(t, err, myErrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, myErrors.ErrInvalidCredentials)
}

func TestUserService_UpdateUserRehashesPassword(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userID := registerTestUser(t, svc, "alice", "secret123", "alice@example.com")

	newPassword := "brand-new-pass"
	_, err := svc.UpdateUser(ctx, userID, &dto.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	// 新密码可登录，旧密码失效
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: newPassword})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, myErrors.ErrInvalidCredentials)
}

func TestUserService_UpdateUserConflicts(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	ctx := context.Background()

	aliceID := registerTestUser(t, svc, "alice", "secret123", "alice@example.com")
	registerTestUser(t, svc, "bob", "secret456", "bob@example.com")

	takenName := "bob"
	_, err := svc.UpdateUser(ctx, aliceID, &dto.UpdateUserRequest{Username: &takenName})
	assert.ErrorIs(t, err, myErrors.ErrUserAlreadyExists)

	// 把用户名改成自己当前的值不算冲突
	ownName := "alice"
	_, err = svc.UpdateUser(ctx, aliceID, &dto.UpdateUserRequest{Username: &ownName})
	assert.NoError(t, err)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	ctx := context.Background()

	userID := registerTestUser(t, svc, "alice", "secret123", "alice@example.com")

	require.NoError(t, svc.DeleteUser(ctx, userID))

	_, err := svc.GetUserByID(ctx, userID)
	assert.ErrorIs(t, err, myErrors.ErrUserNotFound)

	// 重复删除返回未找到而不是成功
	assert.ErrorIs(t, svc.DeleteUser(ctx, userID), myErrors.ErrUserNotFound)
}

func TestUserService_GetUserByIDNotFound(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	_, err := svc.GetUserByID(context.Background(), 999)
	assert.ErrorIs(t, err, myErrors.ErrUserNotFound)
}
