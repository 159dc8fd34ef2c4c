package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/application/user/usecases"
	"github.com/nhadat/marketplace/internal/shared/config"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

type AuthHandler struct {
	googleSignInUC   googleSignInUseCase
	initiateLoginUC  initiateGoogleLoginUseCase
	handleCallbackUC handleGoogleCallbackUseCase
	getMeUC          getMeUseCase
	cookieConfig     config.CookieConfig
	clientOrigin     string
	logger           logger.Interface
}

// NewAuthHandler builds the auth endpoints. initiateLoginUC and
// handleCallbackUC may be nil when the code flow is not available; the
// redirect endpoints then answer 404.
func NewAuthHandler(
	googleSignInUC googleSignInUseCase,
	initiateLoginUC initiateGoogleLoginUseCase,
	handleCallbackUC handleGoogleCallbackUseCase,
	getMeUC getMeUseCase,
	cookieConfig config.CookieConfig,
	clientOrigin string,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		googleSignInUC:   googleSignInUC,
		initiateLoginUC:  initiateLoginUC,
		handleCallbackUC: handleCallbackUC,
		getMeUC:          getMeUC,
		cookieConfig:     cookieConfig,
		clientOrigin:     clientOrigin,
		logger:           logger,
	}
}

type GoogleSignInRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type SignInResponse struct {
	User      *dto.UserResponse `json:"user"`
	IsNewUser bool              `json:"is_new_user"`
}

// GoogleSignIn exchanges a Google ID token for a session cookie
// @Summary Sign in with Google
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body GoogleSignInRequest true "Google ID token"
// @Success 200 {object} utils.APIResponse{data=SignInResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/auth/google [post]
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req GoogleSignInRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	result, err := h.googleSignInUC.Execute(c.Request.Context(), usecases.GoogleSignInCommand{IDToken: req.IDToken})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.setSession(c, result)
	utils.SuccessResponse(c, http.StatusOK, "signed in", SignInResponse{
		User:      dto.ToUserResponse(result.User),
		IsNewUser: result.IsNewUser,
	})
}

// GoogleLogin starts the authorization code flow
// @Summary Redirect to Google
// @Tags Auth
// @Success 302
// @Router /api/auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.initiateLoginUC == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("Google login is not configured"))
		return
	}

	result, err := h.initiateLoginUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Redirect(http.StatusFound, result.AuthURL)
}

// GoogleCallback completes the authorization code flow and redirects back
// to the web client
// @Summary Google OAuth callback
// @Tags Auth
// @Param code query string true "Authorization code"
// @Param state query string true "State"
// @Success 302
// @Router /api/auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.handleCallbackUC == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("Google login is not configured"))
		return
	}

	if providerErr := c.Query("error"); providerErr != "" {
		h.logger.Warnw("google returned an error", "error", providerErr)
		h.redirectToClient(c, "google_denied")
		return
	}

	result, err := h.handleCallbackUC.Execute(c.Request.Context(), usecases.HandleGoogleCallbackCommand{
		Code:  c.Query("code"),
		State: c.Query("state"),
	})
	if err != nil {
		reason := "login_failed"
		if errors.IsForbiddenError(err) {
			reason = "account_locked"
		}
		h.logger.Warnw("google callback failed", "error", err)
		h.redirectToClient(c, reason)
		return
	}

	h.setSession(c, result)
	h.redirectToClient(c, "")
}

// Me returns the caller's profile including credit balances
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _, ok := requireCaller(c)
	if !ok {
		return
	}

	me, err := h.getMeUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", me)
}

// Logout clears the session cookie
// @Summary Logout
// @Tags Auth
// @Success 200 {object} utils.APIResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) setSession(c *gin.Context, result *usecases.SignInResult) {
	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetSessionCookie(c, h.cookieConfig, result.Token, maxAge)
}

func (h *AuthHandler) redirectToClient(c *gin.Context, errorReason string) {
	target := h.clientOrigin
	if target == "" {
		target = "/"
	}
	if errorReason != "" {
		target += "/login?error=" + url.QueryEscape(errorReason)
	}
	c.Redirect(http.StatusFound, target)
}
