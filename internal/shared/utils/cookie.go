package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/shared/config"
	"github.com/nhadat/marketplace/internal/shared/constants"
)

// SetSessionCookie stores the signed session token in an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge int) {
	writeSessionCookie(c, cfg, token, maxAge)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	writeSessionCookie(c, cfg, "", -1)
}

func writeSessionCookie(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	c.SetCookie(sessionCookieName(cfg), value, maxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
}

// GetSessionToken prefers the cookie and falls back to a bearer header for
// API clients that cannot hold cookies.
func GetSessionToken(c *gin.Context, cfg config.CookieConfig) string {
	if token, err := c.Cookie(sessionCookieName(cfg)); err == nil && token != "" {
		return token
	}
	scheme, token, ok := strings.Cut(c.GetHeader(constants.HeaderAuthorization), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func sessionCookieName(cfg config.CookieConfig) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return constants.SessionCookieName
}

func sameSiteMode(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
