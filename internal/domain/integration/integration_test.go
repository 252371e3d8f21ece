package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClinicIntegration(t *testing.T) {
	ci, err := NewClinicIntegration("clinic_alice", "alice@example.com", "1//refresh")
	require.NoError(t, err)

	assert.Equal(t, "clinic_alice", ci.ClinicID)
	assert.Equal(t, StatusActive, ci.Status)
	assert.False(t, ci.IsProvisioned())
	assert.Nil(t, ci.LastSyncedAt)
}

func TestNewClinicIntegration_Validation(t *testing.T) {
	_, err := NewClinicIntegration("", "alice@example.com", "tok")
	assert.Error(t, err)

	_, err = NewClinicIntegration("clinic_alice", "not-an-email", "tok")
	assert.Error(t, err)

	_, err = NewClinicIntegration("clinic_alice", "alice@example.com", "")
	assert.Error(t, err)
}

func TestAttachAutomation(t *testing.T) {
	ci, err := NewClinicIntegration("clinic_alice", "alice@example.com", "1//refresh")
	require.NoError(t, err)

	ci.AttachAutomation("cred-1", "wf-1")

	assert.True(t, ci.IsProvisioned())
	assert.Equal(t, "cred-1", ci.CredentialID)
	assert.Equal(t, "wf-1", ci.WorkflowID)
	require.NotNil(t, ci.LastSyncedAt)
}

func TestDeactivate(t *testing.T) {
	ci, err := NewClinicIntegration("clinic_alice", "alice@example.com", "1//refresh")
	require.NoError(t, err)

	ci.Deactivate()
	assert.Equal(t, StatusInactive, ci.Status)
}
