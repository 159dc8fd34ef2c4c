package usecases

import (
	"context"
	"time"

	"github.com/nhadat/marketplace/internal/domain/user"
)

// OAuthUserInfo is the identity an external provider vouches for.
type OAuthUserInfo struct {
	Email      string
	Name       string
	Picture    string
	ProviderID string
}

// IDTokenVerifier checks an opaque ID token issued to the web client.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUserInfo, error)
}

// OAuthCodeClient drives the authorization code flow with PKCE.
type OAuthCodeClient interface {
	GetAuthURL(state string) (authURL string, codeVerifier string, err error)
	ExchangeCode(ctx context.Context, code string, codeVerifier string) (accessToken string, err error)
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error)
}

// OAuthStateStore keeps the PKCE verifier between login and callback.
// Consume is one-shot.
type OAuthStateStore interface {
	Save(ctx context.Context, state string, codeVerifier string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (string, error)
}

// SessionIssuer signs the session credential set as the auth cookie.
type SessionIssuer interface {
	Issue(u *user.User) (token string, expiresAt time.Time, err error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}
