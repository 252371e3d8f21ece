package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TeodorSim/TransfIT/internal/application/provisioning/usecases"
	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	"github.com/TeodorSim/TransfIT/internal/interfaces/http/handlers/testutil"
	apperrors "github.com/TeodorSim/TransfIT/internal/shared/errors"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
)

type mockGetIntegrationUseCase struct {
	mock.Mock
}

func (m *mockGetIntegrationUseCase) Execute(ctx context.Context, clinicID string) (*usecases.GetIntegrationResult, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.GetIntegrationResult), args.Error(1)
}

type mockDeprovisionUseCase struct {
	mock.Mock
}

func (m *mockDeprovisionUseCase) Execute(ctx context.Context, clinicID string) error {
	args := m.Called(ctx, clinicID)
	return args.Error(0)
}

func newTestClinicHandler(get *mockGetIntegrationUseCase, deprovision *mockDeprovisionUseCase) *ClinicHandler {
	if get == nil {
		get = new(mockGetIntegrationUseCase)
	}
	if deprovision == nil {
		deprovision = new(mockDeprovisionUseCase)
	}
	return NewClinicHandler(get, deprovision, logger.NewLogger())
}

func TestGetIntegration_Success(t *testing.T) {
	uc := new(mockGetIntegrationUseCase)
	uc.On("Execute", mock.Anything, "clinic_alice").Return(&usecases.GetIntegrationResult{
		ClinicID:     "clinic_alice",
		Email:        "alice@example.com",
		CredentialID: "cred-1",
		WorkflowID:   "wf-1",
		Status:       integration.StatusActive,
		Provisioned:  true,
	}, nil)

	h := newTestClinicHandler(uc, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/clinics/clinic_alice/integration", nil)
	testutil.SetURLParam(c, "clinicId", "clinic_alice")

	h.GetIntegration(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "clinic_alice")
	// Token material never crosses this boundary.
	assert.NotContains(t, w.Body.String(), "refresh_token")
}

func TestGetIntegration_NotFound(t *testing.T) {
	uc := new(mockGetIntegrationUseCase)
	uc.On("Execute", mock.Anything, "clinic_missing").
		Return(nil, apperrors.NewNotFoundError("clinic integration not found"))

	h := newTestClinicHandler(uc, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/clinics/clinic_missing/integration", nil)
	testutil.SetURLParam(c, "clinicId", "clinic_missing")

	h.GetIntegration(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(apperrors.ErrorTypeNotFound), resp.Error.Type)
}

func TestDeprovisionIntegration_Success(t *testing.T) {
	uc := new(mockDeprovisionUseCase)
	uc.On("Execute", mock.Anything, "clinic_alice").Return(nil)

	h := newTestClinicHandler(nil, uc)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/clinics/clinic_alice/integration", nil)
	testutil.SetURLParam(c, "clinicId", "clinic_alice")

	h.DeprovisionIntegration(c)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestDeprovisionIntegration_EngineFailureMapsToBadGateway(t *testing.T) {
	uc := new(mockDeprovisionUseCase)
	uc.On("Execute", mock.Anything, "clinic_alice").
		Return(apperrors.NewUpstreamError("automation engine request failed"))

	h := newTestClinicHandler(nil, uc)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/clinics/clinic_alice/integration", nil)
	testutil.SetURLParam(c, "clinicId", "clinic_alice")

	h.DeprovisionIntegration(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(apperrors.ErrorTypeUpstream), resp.Error.Type)
}

func TestDeprovisionIntegration_NotFound(t *testing.T) {
	uc := new(mockDeprovisionUseCase)
	uc.On("Execute", mock.Anything, "clinic_missing").
		Return(apperrors.NewNotFoundError("clinic integration not found"))

	h := newTestClinicHandler(nil, uc)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/clinics/clinic_missing/integration", nil)
	testutil.SetURLParam(c, "clinicId", "clinic_missing")

	h.DeprovisionIntegration(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
