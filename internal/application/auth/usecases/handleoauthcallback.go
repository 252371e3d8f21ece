package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/TeodorSim/TransfIT/internal/domain/clinic"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
	"github.com/TeodorSim/TransfIT/internal/shared/utils"
)

var (
	// ErrStateMismatch means the returned state does not match the
	// nonce issued at login time. The attempt is rejected outright.
	ErrStateMismatch = errors.New("oauth state validation failed")

	// ErrMissingRefreshToken means Google completed the exchange but
	// returned no refresh token, so the integration cannot operate
	// offline. The user must re-consent.
	ErrMissingRefreshToken = errors.New("authorization response contained no refresh token")
)

// TokenSet is what the provider hands back for an authorization code.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
}

type OAuthUserInfo struct {
	Email         string
	Name          string
	EmailVerified bool
	ProviderID    string
}

// OAuthCallbackClient finishes the three-legged flow against the
// provider.
type OAuthCallbackClient interface {
	ExchangeCode(ctx context.Context, code string) (*TokenSet, error)
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error)
}

// ClinicProvisioner creates automation resources and persists the
// integration for a clinic.
type ClinicProvisioner interface {
	Provision(ctx context.Context, clinicID, email, refreshToken string) (credentialID, workflowID string, err error)
}

type HandleOAuthCallbackCommand struct {
	Code string
	// State is what the provider echoed back in the query string.
	State string
	// ExpectedNonce is the value recovered from the signed cookie.
	// Empty when the cookie is missing or failed verification.
	ExpectedNonce string
	Mode          string
}

type HandleOAuthCallbackResult struct {
	ClinicID     string
	Email        string
	Mode         string
	Provisioned  bool
	CredentialID string
	WorkflowID   string
	// FactoryError is set when provisioning failed after a successful
	// login. The login itself still counts as a success.
	FactoryError error
}

type HandleOAuthCallbackUseCase struct {
	googleClient OAuthCallbackClient
	provisioner  ClinicProvisioner
	logger       logger.Interface
}

func NewHandleOAuthCallbackUseCase(
	googleClient OAuthCallbackClient,
	provisioner ClinicProvisioner,
	logger logger.Interface,
) *HandleOAuthCallbackUseCase {
	return &HandleOAuthCallbackUseCase{
		googleClient: googleClient,
		provisioner:  provisioner,
		logger:       logger,
	}
}

// Execute runs the callback pipeline: state validation, code
// exchange, tenant resolution, then the mode branch. Each step only
// runs when the previous one succeeded.
func (uc *HandleOAuthCallbackUseCase) Execute(ctx context.Context, cmd HandleOAuthCallbackCommand) (*HandleOAuthCallbackResult, error) {
	if err := uc.validateState(cmd); err != nil {
		return nil, err
	}

	tokens, info, err := uc.exchangeCode(ctx, cmd.Code)
	if err != nil {
		return nil, err
	}

	clinicID, err := clinic.IDFromEmail(info.Email)
	if err != nil {
		uc.logger.Errorw("failed to derive clinic ID",
			"email", utils.MaskEmail(info.Email),
			"error", err,
		)
		return nil, fmt.Errorf("failed to derive clinic ID: %w", err)
	}

	result := &HandleOAuthCallbackResult{
		ClinicID: clinicID,
		Email:    info.Email,
		Mode:     cmd.Mode,
	}

	if cmd.Mode != ModeInject {
		uc.logger.Infow("test mode login completed, provisioning skipped",
			"clinic_id", clinicID,
			"email", utils.MaskEmail(info.Email),
		)
		return result, nil
	}

	credentialID, workflowID, err := uc.provisioner.Provision(ctx, clinicID, info.Email, tokens.RefreshToken)
	if err != nil {
		// Login succeeded even though provisioning did not. Surface
		// the failure to the caller without failing the flow.
		uc.logger.Errorw("clinic provisioning failed",
			"clinic_id", clinicID,
			"error", err,
		)
		result.FactoryError = err
		return result, nil
	}

	result.Provisioned = true
	result.CredentialID = credentialID
	result.WorkflowID = workflowID
	uc.logger.Infow("clinic provisioned",
		"clinic_id", clinicID,
		"credential_id", credentialID,
		"workflow_id", workflowID,
		"email", utils.MaskEmail(info.Email),
	)
	return result, nil
}

// validateState rejects the attempt unless the echoed state equals the
// nonce from the signed cookie. Missing cookie, missing state, and
// mismatch all fail the same way.
func (uc *HandleOAuthCallbackUseCase) validateState(cmd HandleOAuthCallbackCommand) error {
	if cmd.ExpectedNonce == "" || cmd.State == "" || cmd.State != cmd.ExpectedNonce {
		uc.logger.Warnw("oauth state mismatch",
			"has_state", cmd.State != "",
			"has_nonce", cmd.ExpectedNonce != "",
		)
		return ErrStateMismatch
	}
	return nil
}

func (uc *HandleOAuthCallbackUseCase) exchangeCode(ctx context.Context, code string) (*TokenSet, *OAuthUserInfo, error) {
	if code == "" {
		return nil, nil, fmt.Errorf("authorization code is missing")
	}

	tokens, err := uc.googleClient.ExchangeCode(ctx, code)
	if err != nil {
		uc.logger.Errorw("code exchange failed", "error", err)
		return nil, nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if tokens.RefreshToken == "" {
		return nil, nil, ErrMissingRefreshToken
	}

	info, err := uc.googleClient.GetUserInfo(ctx, tokens.AccessToken)
	if err != nil {
		uc.logger.Errorw("user info fetch failed", "error", err)
		return nil, nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	return tokens, info, nil
}
