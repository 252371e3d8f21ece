package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	apperrors "github.com/TeodorSim/TransfIT/internal/shared/errors"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
)

// GetIntegrationResult deliberately excludes the refresh token; it
// never leaves the persistence boundary through this path.
type GetIntegrationResult struct {
	ClinicID     string     `json:"clinic_id"`
	Email        string     `json:"email"`
	CredentialID string     `json:"credential_id,omitempty"`
	WorkflowID   string     `json:"workflow_id,omitempty"`
	Status       string     `json:"status"`
	Provisioned  bool       `json:"provisioned"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

type GetIntegrationUseCase struct {
	repo   integration.Repository
	logger logger.Interface
}

func NewGetIntegrationUseCase(repo integration.Repository, logger logger.Interface) *GetIntegrationUseCase {
	return &GetIntegrationUseCase{repo: repo, logger: logger}
}

func (uc *GetIntegrationUseCase) Execute(ctx context.Context, clinicID string) (*GetIntegrationResult, error) {
	entity, err := uc.repo.GetByClinicID(ctx, clinicID)
	if err != nil {
		if errors.Is(err, integration.ErrIntegrationNotFound) {
			return nil, apperrors.NewNotFoundError("clinic integration not found")
		}
		uc.logger.Errorw("integration lookup failed", "clinic_id", clinicID, "error", err)
		return nil, apperrors.NewInternalError("failed to load clinic integration")
	}

	return &GetIntegrationResult{
		ClinicID:     entity.ClinicID,
		Email:        entity.Email,
		CredentialID: entity.CredentialID,
		WorkflowID:   entity.WorkflowID,
		Status:       entity.Status,
		Provisioned:  entity.IsProvisioned(),
		LastSyncedAt: entity.LastSyncedAt,
	}, nil
}
