package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/biztime"
)

// Claims identifies the signed-in user. Role is informational; middleware
// reloads the account on every request so role changes and locks apply
// immediately.
type Claims struct {
	UserSID string                 `json:"uid"`
	Role    authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// SessionService issues and verifies the HS256 session token stored in the
// session cookie.
type SessionService struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionService(secret string, ttl time.Duration) *SessionService {
	return &SessionService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *SessionService) Issue(u *user.User) (string, time.Time, error) {
	if u == nil || u.SID() == "" {
		return "", time.Time{}, fmt.Errorf("cannot issue session for unsaved user")
	}

	now := biztime.NowUTC()
	expiresAt := now.Add(s.ttl)
	claims := &Claims{
		UserSID: u.SID(),
		Role:    u.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.SID(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *SessionService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserSID == "" {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
