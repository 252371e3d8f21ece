package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/automation"
	apperrors "github.com/TeodorSim/TransfIT/internal/shared/errors"
)

func provisionedIntegration(t *testing.T) *integration.ClinicIntegration {
	entity, err := integration.NewClinicIntegration("clinic_alice", "alice@example.com", "1//rt")
	require.NoError(t, err)
	entity.AttachAutomation("cred-1", "wf-1")
	return entity
}

func TestDeprovisionClinic_RemovesEngineResourcesAndRecord(t *testing.T) {
	engine := new(mockAutomationEngine)
	engine.On("DeleteWorkflow", mock.Anything, "wf-1").Return(nil)
	engine.On("DeleteCredential", mock.Anything, "cred-1").Return(nil)

	repo := new(mockIntegrationRepository)
	repo.On("GetByClinicID", mock.Anything, "clinic_alice").Return(provisionedIntegration(t), nil)
	repo.On("Delete", mock.Anything, "clinic_alice").Return(nil)

	uc := NewDeprovisionClinicUseCase(engine, repo, noopLogger{})

	require.NoError(t, uc.Execute(context.Background(), "clinic_alice"))
	engine.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestDeprovisionClinic_NotFound(t *testing.T) {
	engine := new(mockAutomationEngine)
	repo := new(mockIntegrationRepository)
	repo.On("GetByClinicID", mock.Anything, "clinic_missing").
		Return(nil, integration.ErrIntegrationNotFound)

	uc := NewDeprovisionClinicUseCase(engine, repo, noopLogger{})

	err := uc.Execute(context.Background(), "clinic_missing")
	assert.True(t, apperrors.IsNotFoundError(err))
	engine.AssertNotCalled(t, "DeleteWorkflow", mock.Anything, mock.Anything)
}

func TestDeprovisionClinic_EngineFailureKeepsRecord(t *testing.T) {
	engine := new(mockAutomationEngine)
	engine.On("DeleteWorkflow", mock.Anything, "wf-1").
		Return(&automation.UpstreamError{Status: 502, Body: "bad gateway"})

	repo := new(mockIntegrationRepository)
	repo.On("GetByClinicID", mock.Anything, "clinic_alice").Return(provisionedIntegration(t), nil)

	uc := NewDeprovisionClinicUseCase(engine, repo, noopLogger{})

	err := uc.Execute(context.Background(), "clinic_alice")
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUpstream, appErr.Type)

	engine.AssertNotCalled(t, "DeleteCredential", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeprovisionClinic_UnprovisionedSkipsEngine(t *testing.T) {
	entity, err := integration.NewClinicIntegration("clinic_bob", "bob@example.com", "1//rt")
	require.NoError(t, err)

	engine := new(mockAutomationEngine)
	repo := new(mockIntegrationRepository)
	repo.On("GetByClinicID", mock.Anything, "clinic_bob").Return(entity, nil)
	repo.On("Delete", mock.Anything, "clinic_bob").Return(nil)

	uc := NewDeprovisionClinicUseCase(engine, repo, noopLogger{})

	require.NoError(t, uc.Execute(context.Background(), "clinic_bob"))
	engine.AssertNotCalled(t, "DeleteWorkflow", mock.Anything, mock.Anything)
	engine.AssertNotCalled(t, "DeleteCredential", mock.Anything, mock.Anything)
}
