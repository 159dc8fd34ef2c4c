package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

type GoogleSignInCommand struct {
	IDToken string
}

type SignInResult struct {
	User      *user.User
	Token     string
	ExpiresAt time.Time
	IsNewUser bool
}

type GoogleSignInUseCase struct {
	verifier IDTokenVerifier
	syncUser *SyncUserUseCase
	sessions SessionIssuer
	logger   logger.Interface
}

func NewGoogleSignInUseCase(
	verifier IDTokenVerifier,
	syncUser *SyncUserUseCase,
	sessions SessionIssuer,
	logger logger.Interface,
) *GoogleSignInUseCase {
	return &GoogleSignInUseCase{
		verifier: verifier,
		syncUser: syncUser,
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *GoogleSignInUseCase) Execute(ctx context.Context, cmd GoogleSignInCommand) (*SignInResult, error) {
	uc.logger.Infow("executing google sign in use case")

	if strings.TrimSpace(cmd.IDToken) == "" {
		return nil, errors.NewValidationError("idToken is required")
	}

	info, err := uc.verifier.VerifyIDToken(ctx, cmd.IDToken)
	if err != nil {
		uc.logger.Warnw("google id token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("Invalid Google credential")
	}

	return completeSignIn(ctx, uc.syncUser, uc.sessions, uc.logger, info)
}

// completeSignIn is shared by the ID token and authorization code flows.
func completeSignIn(
	ctx context.Context,
	syncUser *SyncUserUseCase,
	sessions SessionIssuer,
	log logger.Interface,
	info *OAuthUserInfo,
) (*SignInResult, error) {
	synced, err := syncUser.Execute(ctx, info)
	if err != nil {
		return nil, err
	}

	if synced.User.IsLocked() {
		log.Warnw("locked account attempted sign in", "user_id", synced.User.ID())
		return nil, errors.NewForbiddenError("Account locked")
	}

	token, expiresAt, err := sessions.Issue(synced.User)
	if err != nil {
		log.Errorw("failed to issue session", "user_id", synced.User.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	log.Infow("user signed in", "user_id", synced.User.ID(), "new_user", synced.IsNewUser)
	return &SignInResult{
		User:      synced.User,
		Token:     token,
		ExpiresAt: expiresAt,
		IsNewUser: synced.IsNewUser,
	}, nil
}
