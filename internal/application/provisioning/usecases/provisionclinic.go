// Package usecases orchestrates automation engine provisioning for
// clinics.
package usecases

import (
	"context"
	"fmt"

	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/automation"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
	"github.com/TeodorSim/TransfIT/internal/shared/utils"
)

// AutomationEngine is the subset of the engine API provisioning needs.
type AutomationEngine interface {
	CreateCredential(ctx context.Context, clinicID string, cred automation.GoogleCredential) (string, error)
	CreateWorkflow(ctx context.Context, clinicID string, definition map[string]any) (string, error)
}

// WorkflowRenderer produces a workflow definition bound to a
// credential.
type WorkflowRenderer interface {
	Render(credentialID string) (map[string]any, error)
}

type ProvisionClinicUseCase struct {
	engine       AutomationEngine
	renderer     WorkflowRenderer
	repo         integration.Repository
	clientID     string
	clientSecret string
	logger       logger.Interface
}

func NewProvisionClinicUseCase(
	engine AutomationEngine,
	renderer WorkflowRenderer,
	repo integration.Repository,
	clientID string,
	clientSecret string,
	logger logger.Interface,
) *ProvisionClinicUseCase {
	return &ProvisionClinicUseCase{
		engine:       engine,
		renderer:     renderer,
		repo:         repo,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
	}
}

// Provision creates the clinic's credential and workflow in the
// automation engine, then persists the integration. Steps run in
// order and stop at the first failure. There is no compensating
// rollback: a workflow failure after the credential was created
// leaves the credential behind in the engine.
func (uc *ProvisionClinicUseCase) Provision(ctx context.Context, clinicID, email, refreshToken string) (string, string, error) {
	entity, err := integration.NewClinicIntegration(clinicID, email, refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid integration: %w", err)
	}

	credentialID, err := uc.engine.CreateCredential(ctx, clinicID, automation.GoogleCredential{
		ClientID:     uc.clientID,
		ClientSecret: uc.clientSecret,
		RefreshToken: refreshToken,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to create credential: %w", err)
	}

	definition, err := uc.renderer.Render(credentialID)
	if err != nil {
		return "", "", fmt.Errorf("failed to render workflow: %w", err)
	}

	workflowID, err := uc.engine.CreateWorkflow(ctx, clinicID, definition)
	if err != nil {
		uc.logger.Errorw("workflow creation failed, credential left in engine",
			"clinic_id", clinicID,
			"credential_id", credentialID,
			"error", err,
		)
		return "", "", fmt.Errorf("failed to create workflow: %w", err)
	}

	entity.AttachAutomation(credentialID, workflowID)
	if err := uc.repo.Upsert(ctx, entity); err != nil {
		return "", "", fmt.Errorf("failed to persist integration: %w", err)
	}

	uc.logger.Infow("clinic integration stored",
		"clinic_id", clinicID,
		"email", utils.MaskEmail(email),
		"credential_id", credentialID,
		"workflow_id", workflowID,
	)
	return credentialID, workflowID, nil
}
