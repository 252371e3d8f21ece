package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/automation"
	"github.com/TeodorSim/TransfIT/internal/shared/logger"
)

type mockAutomationEngine struct {
	mock.Mock
}

func (m *mockAutomationEngine) CreateCredential(ctx context.Context, clinicID string, cred automation.GoogleCredential) (string, error) {
	args := m.Called(ctx, clinicID, cred)
	return args.String(0), args.Error(1)
}

func (m *mockAutomationEngine) CreateWorkflow(ctx context.Context, clinicID string, definition map[string]any) (string, error) {
	args := m.Called(ctx, clinicID, definition)
	return args.String(0), args.Error(1)
}

func (m *mockAutomationEngine) DeleteWorkflow(ctx context.Context, workflowID string) error {
	args := m.Called(ctx, workflowID)
	return args.Error(0)
}

func (m *mockAutomationEngine) DeleteCredential(ctx context.Context, credentialID string) error {
	args := m.Called(ctx, credentialID)
	return args.Error(0)
}

type mockWorkflowRenderer struct {
	mock.Mock
}

func (m *mockWorkflowRenderer) Render(credentialID string) (map[string]any, error) {
	args := m.Called(credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

type mockIntegrationRepository struct {
	mock.Mock
}

func (m *mockIntegrationRepository) Upsert(ctx context.Context, entity *integration.ClinicIntegration) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *mockIntegrationRepository) GetByClinicID(ctx context.Context, clinicID string) (*integration.ClinicIntegration, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.ClinicIntegration), args.Error(1)
}

func (m *mockIntegrationRepository) Delete(ctx context.Context, clinicID string) error {
	args := m.Called(ctx, clinicID)
	return args.Error(0)
}

// noopLogger satisfies logger.Interface without producing output.
type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)           {}
func (noopLogger) Info(msg string, args ...any)            {}
func (noopLogger) Warn(msg string, args ...any)            {}
func (noopLogger) Error(msg string, args ...any)           {}
func (noopLogger) Fatal(msg string, args ...any)           {}
func (noopLogger) Debugw(msg string, keysAndValues ...any) {}
func (noopLogger) Infow(msg string, keysAndValues ...any)  {}
func (noopLogger) Warnw(msg string, keysAndValues ...any)  {}
func (noopLogger) Errorw(msg string, keysAndValues ...any) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...any) {}
func (n noopLogger) With(args ...any) logger.Interface     { return n }
func (n noopLogger) Named(name string) logger.Interface    { return n }
