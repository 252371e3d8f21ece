package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/automation"
)

func newProvisionUseCase(engine *mockAutomationEngine, renderer *mockWorkflowRenderer, repo *mockIntegrationRepository) *ProvisionClinicUseCase {
	return NewProvisionClinicUseCase(engine, renderer, repo, "gcid", "gcsecret", noopLogger{})
}

func TestProvisionClinic_HappyPath(t *testing.T) {
	engine := new(mockAutomationEngine)
	renderer := new(mockWorkflowRenderer)
	repo := new(mockIntegrationRepository)

	definition := map[string]any{"nodes": []any{}}

	engine.On("CreateCredential", mock.Anything, "clinic_alice", automation.GoogleCredential{
		ClientID:     "gcid",
		ClientSecret: "gcsecret",
		RefreshToken: "1//rt",
	}).Return("cred-1", nil)
	renderer.On("Render", "cred-1").Return(definition, nil)
	engine.On("CreateWorkflow", mock.Anything, "clinic_alice", definition).Return("wf-1", nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(e *integration.ClinicIntegration) bool {
		return e.ClinicID == "clinic_alice" &&
			e.CredentialID == "cred-1" &&
			e.WorkflowID == "wf-1" &&
			e.RefreshToken == "1//rt"
	})).Return(nil)

	uc := newProvisionUseCase(engine, renderer, repo)

	credID, wfID, err := uc.Provision(context.Background(), "clinic_alice", "alice@example.com", "1//rt")
	require.NoError(t, err)
	assert.Equal(t, "cred-1", credID)
	assert.Equal(t, "wf-1", wfID)

	engine.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestProvisionClinic_CredentialFailureStopsPipeline(t *testing.T) {
	engine := new(mockAutomationEngine)
	renderer := new(mockWorkflowRenderer)
	repo := new(mockIntegrationRepository)

	engine.On("CreateCredential", mock.Anything, "clinic_alice", mock.Anything).
		Return("", &automation.UpstreamError{Status: 401, Body: "bad key"})

	uc := newProvisionUseCase(engine, renderer, repo)

	_, _, err := uc.Provision(context.Background(), "clinic_alice", "alice@example.com", "1//rt")
	require.Error(t, err)

	var upstream *automation.UpstreamError
	assert.ErrorAs(t, err, &upstream)

	engine.AssertNotCalled(t, "CreateWorkflow", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestProvisionClinic_WorkflowFailureLeavesNoRecord(t *testing.T) {
	engine := new(mockAutomationEngine)
	renderer := new(mockWorkflowRenderer)
	repo := new(mockIntegrationRepository)

	engine.On("CreateCredential", mock.Anything, "clinic_alice", mock.Anything).Return("cred-1", nil)
	renderer.On("Render", "cred-1").Return(map[string]any{}, nil)
	engine.On("CreateWorkflow", mock.Anything, "clinic_alice", mock.Anything).
		Return("", errors.New("workflow rejected"))

	uc := newProvisionUseCase(engine, renderer, repo)

	_, _, err := uc.Provision(context.Background(), "clinic_alice", "alice@example.com", "1//rt")
	require.Error(t, err)

	// The credential stays behind in the engine; nothing is persisted.
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestProvisionClinic_PersistFailure(t *testing.T) {
	engine := new(mockAutomationEngine)
	renderer := new(mockWorkflowRenderer)
	repo := new(mockIntegrationRepository)

	engine.On("CreateCredential", mock.Anything, "clinic_alice", mock.Anything).Return("cred-1", nil)
	renderer.On("Render", "cred-1").Return(map[string]any{}, nil)
	engine.On("CreateWorkflow", mock.Anything, "clinic_alice", mock.Anything).Return("wf-1", nil)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("db down"))

	uc := newProvisionUseCase(engine, renderer, repo)

	_, _, err := uc.Provision(context.Background(), "clinic_alice", "alice@example.com", "1//rt")
	assert.Error(t, err)
}

func TestProvisionClinic_InvalidInput(t *testing.T) {
	engine := new(mockAutomationEngine)
	renderer := new(mockWorkflowRenderer)
	repo := new(mockIntegrationRepository)

	uc := newProvisionUseCase(engine, renderer, repo)

	_, _, err := uc.Provision(context.Background(), "", "alice@example.com", "1//rt")
	require.Error(t, err)
	engine.AssertNotCalled(t, "CreateCredential", mock.Anything, mock.Anything, mock.Anything)
}
