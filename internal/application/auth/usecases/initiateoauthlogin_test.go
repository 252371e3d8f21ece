package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/TeodorSim/TransfIT/internal/shared/errors"
)

func TestInitiateOAuthLogin_DefaultsToInjectMode(t *testing.T) {
	client := new(mockOAuthClient)
	client.On("GetAuthURL", mock.AnythingOfType("string")).Return("https://accounts.google.com/auth?state=x")

	uc := NewInitiateOAuthLoginUseCase(client, noopLogger{})

	result, err := uc.Execute(InitiateOAuthLoginCommand{})
	require.NoError(t, err)

	assert.Equal(t, ModeInject, result.Mode)
	assert.NotEmpty(t, result.Nonce)
	assert.Equal(t, "https://accounts.google.com/auth?state=x", result.AuthURL)
	client.AssertExpectations(t)
}

func TestInitiateOAuthLogin_TestMode(t *testing.T) {
	client := new(mockOAuthClient)
	client.On("GetAuthURL", mock.AnythingOfType("string")).Return("https://auth")

	uc := NewInitiateOAuthLoginUseCase(client, noopLogger{})

	result, err := uc.Execute(InitiateOAuthLoginCommand{Mode: ModeTest})
	require.NoError(t, err)
	assert.Equal(t, ModeTest, result.Mode)
}

func TestInitiateOAuthLogin_UnknownModeRejected(t *testing.T) {
	client := new(mockOAuthClient)
	uc := NewInitiateOAuthLoginUseCase(client, noopLogger{})

	_, err := uc.Execute(InitiateOAuthLoginCommand{Mode: "production"})
	assert.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	client.AssertNotCalled(t, "GetAuthURL", mock.Anything)
}

func TestInitiateOAuthLogin_NonceIsUnique(t *testing.T) {
	client := new(mockOAuthClient)
	client.On("GetAuthURL", mock.AnythingOfType("string")).Return("https://auth")

	uc := NewInitiateOAuthLoginUseCase(client, noopLogger{})

	a, err := uc.Execute(InitiateOAuthLoginCommand{})
	require.NoError(t, err)
	b, err := uc.Execute(InitiateOAuthLoginCommand{})
	require.NoError(t, err)

	assert.NotEqual(t, a.Nonce, b.Nonce)
}
