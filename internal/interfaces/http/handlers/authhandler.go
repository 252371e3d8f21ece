package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/TeodorSim/TransfIT/internal/application/auth/usecases"
	"github.com/TeodorSim/TransfIT/internal/shared/config"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
	"github.com/TeodorSim/TransfIT/internal/shared/utils"
)

// Error reasons surfaced on the /auth/error page.
const (
	reasonStateMismatch       = "state_mismatch"
	reasonMissingRefreshToken = "missing_refresh_token"
	reasonProviderDenied      = "provider_denied"
	reasonOAuthFailed         = "oauth_failed"
)

type AuthHandler struct {
	initiateOAuthUseCase initiateOAuthUseCase
	handleOAuthUseCase   handleOAuthCallbackUseCase
	logger               logger.Interface
	cookieConfig         config.CookieConfig
	cookieSecret         string
}

func NewAuthHandler(
	initiateOAuthUC initiateOAuthUseCase,
	handleOAuthUC handleOAuthCallbackUseCase,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
	cookieSecret string,
) *AuthHandler {
	return &AuthHandler{
		initiateOAuthUseCase: initiateOAuthUC,
		handleOAuthUseCase:   handleOAuthUC,
		logger:               logger,
		cookieConfig:         cookieConfig,
		cookieSecret:         cookieSecret,
	}
}

// InitiateOAuth starts the Google login round trip. The state nonce
// and requested mode travel as signed HttpOnly cookies so the callback
// can verify them without server-side session state.
func (h *AuthHandler) InitiateOAuth(c *gin.Context) {
	result, err := h.initiateOAuthUseCase.Execute(usecases.InitiateOAuthLoginCommand{
		Mode: c.Query("mode"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetOAuthCookies(c, h.cookieConfig, h.cookieSecret, result.Nonce, result.Mode)
	c.Redirect(http.StatusFound, result.AuthURL)
}

// HandleOAuthCallback finishes the flow. The state and mode cookies
// are consumed exactly once: they are cleared before the outcome is
// known so a retry must start over at /auth/google.
func (h *AuthHandler) HandleOAuthCallback(c *gin.Context) {
	if providerErr := c.Query("error"); providerErr != "" {
		h.logger.Warnw("provider returned error", "error", providerErr)
		utils.ClearOAuthCookies(c, h.cookieConfig)
		h.redirectError(c, reasonProviderDenied)
		return
	}

	nonce, err := utils.GetSignedCookie(c, utils.OAuthStateCookie, h.cookieSecret)
	if err != nil {
		nonce = ""
	}
	mode, err := utils.GetSignedCookie(c, utils.OAuthModeCookie, h.cookieSecret)
	if err != nil {
		mode = usecases.ModeTest
	}
	utils.ClearOAuthCookies(c, h.cookieConfig)

	result, err := h.handleOAuthUseCase.Execute(c.Request.Context(), usecases.HandleOAuthCallbackCommand{
		Code:          c.Query("code"),
		State:         c.Query("state"),
		ExpectedNonce: nonce,
		Mode:          mode,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrStateMismatch):
			h.redirectError(c, reasonStateMismatch)
		case errors.Is(err, usecases.ErrMissingRefreshToken):
			h.redirectError(c, reasonMissingRefreshToken)
		default:
			h.logger.Errorw("oauth callback failed", "error", err)
			h.redirectError(c, reasonOAuthFailed)
		}
		return
	}

	target := url.Values{}
	target.Set("email", result.Email)
	target.Set("clinicId", result.ClinicID)
	target.Set("mode", result.Mode)
	switch {
	case result.Provisioned:
		target.Set("credentialId", result.CredentialID)
		target.Set("workflowId", result.WorkflowID)
	case result.FactoryError != nil:
		target.Set("hasRefreshToken", "true")
		target.Set("factoryError", result.FactoryError.Error())
	default:
		target.Set("hasRefreshToken", "true")
	}
	c.Redirect(http.StatusFound, "/auth/success?"+target.Encode())
}

func (h *AuthHandler) redirectError(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, "/auth/error?message="+url.QueryEscape(reason))
}
