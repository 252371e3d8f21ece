package usecases

import (
	"context"
	"errors"

	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/automation"
	apperrors "github.com/TeodorSim/TransfIT/internal/shared/errors"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
)

// AutomationTeardown removes engine resources created during
// provisioning.
type AutomationTeardown interface {
	DeleteWorkflow(ctx context.Context, workflowID string) error
	DeleteCredential(ctx context.Context, credentialID string) error
}

type DeprovisionClinicUseCase struct {
	engine AutomationTeardown
	repo   integration.Repository
	logger logger.Interface
}

func NewDeprovisionClinicUseCase(
	engine AutomationTeardown,
	repo integration.Repository,
	logger logger.Interface,
) *DeprovisionClinicUseCase {
	return &DeprovisionClinicUseCase{
		engine: engine,
		repo:   repo,
		logger: logger,
	}
}

// Execute tears down a clinic's integration in reverse creation
// order: workflow, then credential, then the stored record. The
// record is only removed once both engine resources are gone, so a
// mid-teardown failure leaves the integration visible for a retry.
func (uc *DeprovisionClinicUseCase) Execute(ctx context.Context, clinicID string) error {
	entity, err := uc.repo.GetByClinicID(ctx, clinicID)
	if err != nil {
		if errors.Is(err, integration.ErrIntegrationNotFound) {
			return apperrors.NewNotFoundError("clinic integration not found")
		}
		uc.logger.Errorw("integration lookup failed", "clinic_id", clinicID, "error", err)
		return apperrors.NewInternalError("failed to load clinic integration")
	}

	if entity.WorkflowID != "" {
		if err := uc.engine.DeleteWorkflow(ctx, entity.WorkflowID); err != nil {
			uc.logger.Errorw("workflow teardown failed",
				"clinic_id", clinicID,
				"workflow_id", entity.WorkflowID,
				"error", err,
			)
			return engineError(err)
		}
	}

	if entity.CredentialID != "" {
		if err := uc.engine.DeleteCredential(ctx, entity.CredentialID); err != nil {
			uc.logger.Errorw("credential teardown failed",
				"clinic_id", clinicID,
				"credential_id", entity.CredentialID,
				"error", err,
			)
			return engineError(err)
		}
	}

	if err := uc.repo.Delete(ctx, clinicID); err != nil {
		if errors.Is(err, integration.ErrIntegrationNotFound) {
			return apperrors.NewNotFoundError("clinic integration not found")
		}
		return apperrors.NewInternalError("failed to delete clinic integration")
	}

	uc.logger.Infow("clinic integration removed", "clinic_id", clinicID)
	return nil
}

// engineError maps an automation client failure onto the 502 error
// the HTTP layer reports for a broken dependency.
func engineError(err error) error {
	var upstream *automation.UpstreamError
	var unreachable *automation.UnreachableError
	if errors.As(err, &upstream) || errors.As(err, &unreachable) {
		return apperrors.NewUpstreamError("automation engine request failed", err.Error())
	}
	return apperrors.NewInternalError("automation teardown failed")
}
