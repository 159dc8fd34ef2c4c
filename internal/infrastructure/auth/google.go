package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/nhadat/marketplace/internal/application/user/usecases"
)

const (
	httpClientTimeout = 15 * time.Second

	defaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	defaultUserInfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GoogleClient verifies sign-in ID tokens and runs the authorization code
// flow with PKCE.
type GoogleClient struct {
	config       *oauth2.Config
	httpClient   *http.Client
	tokenInfoURL string
	userInfoURL  string
}

func NewGoogleClient(cfg GoogleConfig) *GoogleClient {
	return &GoogleClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		httpClient:   &http.Client{Timeout: httpClientTimeout},
		tokenInfoURL: defaultTokenInfoURL,
		userInfoURL:  defaultUserInfoURL,
	}
}

// Configured reports whether a client id is set.
func (c *GoogleClient) Configured() bool {
	return c.config.ClientID != ""
}

type tokenInfo struct {
	Audience      string `json:"aud"`
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Issuer        string `json:"iss"`
}

// VerifyIDToken asks Google's tokeninfo endpoint to validate the credential
// and checks that it was minted for this client with a verified email.
func (c *GoogleClient) VerifyIDToken(ctx context.Context, idToken string) (*usecases.OAuthUserInfo, error) {
	endpoint := c.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	var info tokenInfo
	if err := c.getJSON(ctx, endpoint, "", &info); err != nil {
		return nil, err
	}

	if info.Audience != c.config.ClientID {
		return nil, fmt.Errorf("token audience mismatch")
	}
	if info.Issuer != "accounts.google.com" && info.Issuer != "https://accounts.google.com" {
		return nil, fmt.Errorf("unexpected token issuer %q", info.Issuer)
	}
	if info.Email == "" || !strings.EqualFold(info.EmailVerified, "true") {
		return nil, fmt.Errorf("google account email is not verified")
	}

	return &usecases.OAuthUserInfo{
		Email:      info.Email,
		Name:       info.Name,
		Picture:    info.Picture,
		ProviderID: info.Subject,
	}, nil
}

func (c *GoogleClient) GetAuthURL(state string) (string, string, error) {
	verifier := oauth2.GenerateVerifier()
	authURL := c.config.AuthCodeURL(state,
		oauth2.AccessTypeOnline,
		oauth2.S256ChallengeOption(verifier),
	)
	return authURL, verifier, nil
}

func (c *GoogleClient) ExchangeCode(ctx context.Context, code, codeVerifier string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.config.Exchange(ctx, code, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}
	return token.AccessToken, nil
}

type userInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (c *GoogleClient) GetUserInfo(ctx context.Context, accessToken string) (*usecases.OAuthUserInfo, error) {
	var info userInfo
	if err := c.getJSON(ctx, c.userInfoURL, accessToken, &info); err != nil {
		return nil, err
	}
	if !info.VerifiedEmail {
		return nil, fmt.Errorf("google account email is not verified")
	}

	return &usecases.OAuthUserInfo{
		Email:      info.Email,
		Name:       info.Name,
		Picture:    info.Picture,
		ProviderID: info.ID,
	}, nil
}

func (c *GoogleClient) getJSON(ctx context.Context, endpoint, bearer string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("google request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("google returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode google response: %w", err)
	}
	return nil
}
