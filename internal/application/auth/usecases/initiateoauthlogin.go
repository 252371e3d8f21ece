package usecases

import (
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/TeodorSim/TransfIT/internal/shared/errors"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
)

const (
	// ModeTest runs the OAuth round trip without touching the
	// automation engine or the database.
	ModeTest = "test"
	// ModeInject provisions automation resources and persists the
	// integration.
	ModeInject = "inject"
)

// AuthURLBuilder builds the provider consent URL for a state nonce.
type AuthURLBuilder interface {
	GetAuthURL(state string) string
}

type InitiateOAuthLoginCommand struct {
	Mode string
}

type InitiateOAuthLoginResult struct {
	AuthURL string
	Nonce   string
	Mode    string
}

type InitiateOAuthLoginUseCase struct {
	googleClient AuthURLBuilder
	logger       logger.Interface
}

func NewInitiateOAuthLoginUseCase(
	googleClient AuthURLBuilder,
	logger logger.Interface,
) *InitiateOAuthLoginUseCase {
	return &InitiateOAuthLoginUseCase{
		googleClient: googleClient,
		logger:       logger,
	}
}

func (uc *InitiateOAuthLoginUseCase) Execute(cmd InitiateOAuthLoginCommand) (*InitiateOAuthLoginResult, error) {
	mode := cmd.Mode
	switch mode {
	case "":
		// Plain logins provision; test mode must be asked for.
		mode = ModeInject
	case ModeTest, ModeInject:
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported login mode: %s", cmd.Mode))
	}

	nonce := uuid.NewString()
	authURL := uc.googleClient.GetAuthURL(nonce)

	uc.logger.Infow("OAuth login initiated", "mode", mode, "state", nonce)

	return &InitiateOAuthLoginResult{
		AuthURL: authURL,
		Nonce:   nonce,
		Mode:    mode,
	}, nil
}
