package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	apperrors "github.com/TeodorSim/TransfIT/internal/shared/errors"
)

func TestGetIntegration_Found(t *testing.T) {
	repo := new(mockIntegrationRepository)

	entity, err := integration.NewClinicIntegration("clinic_alice", "alice@example.com", "1//rt")
	require.NoError(t, err)
	entity.AttachAutomation("cred-1", "wf-1")

	repo.On("GetByClinicID", context.Background(), "clinic_alice").Return(entity, nil)

	uc := NewGetIntegrationUseCase(repo, noopLogger{})

	result, err := uc.Execute(context.Background(), "clinic_alice")
	require.NoError(t, err)

	assert.Equal(t, "clinic_alice", result.ClinicID)
	assert.Equal(t, "cred-1", result.CredentialID)
	assert.True(t, result.Provisioned)
	assert.NotNil(t, result.LastSyncedAt)
}

func TestGetIntegration_NotFound(t *testing.T) {
	repo := new(mockIntegrationRepository)
	repo.On("GetByClinicID", context.Background(), "clinic_missing").
		Return(nil, integration.ErrIntegrationNotFound)

	uc := NewGetIntegrationUseCase(repo, noopLogger{})

	_, err := uc.Execute(context.Background(), "clinic_missing")
	assert.True(t, apperrors.IsNotFoundError(err))
}
