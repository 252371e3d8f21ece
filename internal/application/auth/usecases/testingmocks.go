package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/TeodorSim/TransfIT/internal/shared/logger"
)

type mockOAuthClient struct {
	mock.Mock
}

func (m *mockOAuthClient) GetAuthURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *mockOAuthClient) ExchangeCode(ctx context.Context, code string) (*TokenSet, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenSet), args.Error(1)
}

func (m *mockOAuthClient) GetUserInfo(ctx context.Context, accessToken string) (*OAuthUserInfo, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*OAuthUserInfo), args.Error(1)
}

type mockProvisioner struct {
	mock.Mock
}

func (m *mockProvisioner) Provision(ctx context.Context, clinicID, email, refreshToken string) (string, string, error) {
	args := m.Called(ctx, clinicID, email, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

// noopLogger satisfies logger.Interface without producing output.
type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)             {}
func (noopLogger) Info(msg string, args ...any)              {}
func (noopLogger) Warn(msg string, args ...any)              {}
func (noopLogger) Error(msg string, args ...any)             {}
func (noopLogger) Fatal(msg string, args ...any)             {}
func (noopLogger) Debugw(msg string, keysAndValues ...any)   {}
func (noopLogger) Infow(msg string, keysAndValues ...any)    {}
func (noopLogger) Warnw(msg string, keysAndValues ...any)    {}
func (noopLogger) Errorw(msg string, keysAndValues ...any)   {}
func (noopLogger) Fatalw(msg string, keysAndValues ...any)   {}
func (n noopLogger) With(args ...any) logger.Interface       { return n }
func (n noopLogger) Named(name string) logger.Interface      { return n }
