package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/infrastructure/auth"
	"github.com/nhadat/marketplace/internal/shared/config"
	"github.com/nhadat/marketplace/internal/shared/constants"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

type sessionVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware resolves the caller from the session cookie. The account is
// reloaded on every request, so a lock or role change takes effect without
// waiting for the token to expire.
type AuthMiddleware struct {
	sessions sessionVerifier
	userRepo user.Repository
	cookie   config.CookieConfig
	logger   logger.Interface
}

func NewAuthMiddleware(sessions sessionVerifier, userRepo user.Repository, cookie config.CookieConfig, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		userRepo: userRepo,
		cookie:   cookie,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetSessionToken(c, m.cookie)
		if token == "" {
			abortWithError(c, errors.NewUnauthorizedError("Not authenticated"))
			return
		}

		u, err := m.resolve(c, token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		setCaller(c, u)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid session is present and lets
// anonymous requests through otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := utils.GetSessionToken(c, m.cookie); token != "" {
			if u, err := m.resolve(c, token); err == nil {
				setCaller(c, u)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context, token string) (*user.User, error) {
	claims, err := m.sessions.Verify(token)
	if err != nil {
		m.logger.Debugw("failed to verify session token", "error", err)
		return nil, errors.NewUnauthorizedError("Invalid or expired session")
	}

	u, err := m.userRepo.GetBySID(c.Request.Context(), claims.UserSID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("User not found")
		}
		m.logger.Errorw("failed to load session user", "user_sid", claims.UserSID, "error", err)
		return nil, errors.NewInternalError(constants.ErrMsgInternalServerError)
	}

	if u.IsLocked() {
		m.logger.Warnw("locked account rejected", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError("Account locked")
	}
	return u, nil
}

func setCaller(c *gin.Context, u *user.User) {
	c.Set(constants.ContextKeyUserID, u.ID())
	c.Set(constants.ContextKeyUserRole, u.Role())
	c.Set(constants.ContextKeyUserEmail, u.Email().String())
}

func abortWithError(c *gin.Context, err error) {
	utils.ErrorResponseWithError(c, err)
	c.Abort()
}
