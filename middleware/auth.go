package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/blog_service/auth"
	"github.com/Xushengqwer/blog_service/pkg/response"
	"github.com/Xushengqwer/blog_service/repo/mysql"
)

// bearerPrefix Authorization 头的认证方案前缀
const bearerPrefix = "Bearer "

// AuthMiddleware 创建一个基于 Bearer 令牌的认证中间件。
//
// 认证流程：
//  1. 从 Authorization 头提取 Bearer 令牌，缺失或方案不对返回 401。
//  2. 校验令牌签名与有效期，失败返回 401。
//  3. 回源数据库确认令牌对应的用户仍然存在且未被软删除。
//     注意这一步失败返回的是 404 而不是 401：令牌本身是有效的，
//     失败的原因是用户已不存在，两种情况对客户端必须可区分。
//  4. 通过后把用户 ID 注入 gin.Context，供后续处理函数读取。
func AuthMiddleware(
	tokenManager *auth.TokenManager,
	userRepo mysql.UserRepository,
	logger *core.ZapLogger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			c.Header("WWW-Authenticate", "Bearer")
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少或无效的 Authorization 头")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		claims, err := tokenManager.ParseToken(tokenString)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无效或已过期的访问令牌")
			c.Abort()
			return
		}

		// 令牌有效不代表用户还在：用户可能在令牌有效期内被删除。
		if _, err := userRepo.GetUserByID(c.Request.Context(), claims.UserID); err != nil {
			if errors.Is(err, commonerrors.ErrRepoNotFound) {
				logger.Warn("持有效令牌的用户已不存在", zap.Uint64("userID", claims.UserID))
				response.RespondError(c, http.StatusNotFound, response.ErrCodeClientNotFound, "用户不存在")
				c.Abort()
				return
			}
			logger.Error("认证中间件查询用户失败", zap.Uint64("userID", claims.UserID), zap.Error(err))
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "服务内部错误")
			c.Abort()
			return
		}

		c.Set(string(constants.UserIDKey), claims.UserID)
		c.Next()
	}
}
