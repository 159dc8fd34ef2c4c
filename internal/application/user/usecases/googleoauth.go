package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

// OAuthStateTTL bounds how long a login attempt may take at the provider.
const OAuthStateTTL = 10 * time.Minute

type InitiateGoogleLoginResult struct {
	AuthURL string
	State   string
}

type InitiateGoogleLoginUseCase struct {
	client OAuthCodeClient
	states OAuthStateStore
	logger logger.Interface
}

func NewInitiateGoogleLoginUseCase(client OAuthCodeClient, states OAuthStateStore, logger logger.Interface) *InitiateGoogleLoginUseCase {
	return &InitiateGoogleLoginUseCase{
		client: client,
		states: states,
		logger: logger,
	}
}

func (uc *InitiateGoogleLoginUseCase) Execute(ctx context.Context) (*InitiateGoogleLoginResult, error) {
	uc.logger.Infow("executing initiate google login use case")

	state := uuid.NewString()
	authURL, verifier, err := uc.client.GetAuthURL(state)
	if err != nil {
		uc.logger.Errorw("failed to build google auth url", "error", err)
		return nil, fmt.Errorf("failed to build auth url: %w", err)
	}

	if err := uc.states.Save(ctx, state, verifier, OAuthStateTTL); err != nil {
		uc.logger.Errorw("failed to store oauth state", "error", err)
		return nil, fmt.Errorf("failed to store oauth state: %w", err)
	}

	return &InitiateGoogleLoginResult{AuthURL: authURL, State: state}, nil
}

type HandleGoogleCallbackCommand struct {
	Code  string
	State string
}

type HandleGoogleCallbackUseCase struct {
	client   OAuthCodeClient
	states   OAuthStateStore
	syncUser *SyncUserUseCase
	sessions SessionIssuer
	logger   logger.Interface
}

func NewHandleGoogleCallbackUseCase(
	client OAuthCodeClient,
	states OAuthStateStore,
	syncUser *SyncUserUseCase,
	sessions SessionIssuer,
	logger logger.Interface,
) *HandleGoogleCallbackUseCase {
	return &HandleGoogleCallbackUseCase{
		client:   client,
		states:   states,
		syncUser: syncUser,
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *HandleGoogleCallbackUseCase) Execute(ctx context.Context, cmd HandleGoogleCallbackCommand) (*SignInResult, error) {
	uc.logger.Infow("executing google callback use case")

	if cmd.Code == "" || cmd.State == "" {
		return nil, errors.NewValidationError("code and state are required")
	}

	verifier, err := uc.states.Consume(ctx, cmd.State)
	if err != nil || verifier == "" {
		uc.logger.Warnw("unknown or expired oauth state", "error", err)
		return nil, errors.NewUnauthorizedError("Login session expired, please try again")
	}

	accessToken, err := uc.client.ExchangeCode(ctx, cmd.Code, verifier)
	if err != nil {
		uc.logger.Warnw("failed to exchange google auth code", "error", err)
		return nil, errors.NewUnauthorizedError("Invalid Google credential")
	}

	info, err := uc.client.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Warnw("failed to fetch google user info", "error", err)
		return nil, errors.NewUnauthorizedError("Invalid Google credential")
	}

	return completeSignIn(ctx, uc.syncUser, uc.sessions, uc.logger, info)
}
