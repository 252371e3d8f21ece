package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/crypto"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ClinicIntegrationModel{})
	require.NoError(t, err)

	return db
}

func newTestRepo(t *testing.T, db *gorm.DB) integration.Repository {
	cipher, err := crypto.NewTokenCipher("integration-test-secret")
	require.NoError(t, err)
	return NewClinicIntegrationRepository(db, cipher)
}

func createTestIntegration(t *testing.T, clinicID, email, token string) *integration.ClinicIntegration {
	ci, err := integration.NewClinicIntegration(clinicID, email, token)
	require.NoError(t, err)
	return ci
}

func TestClinicIntegrationRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestRepo(t, db)
	ctx := context.Background()

	t.Run("insert new integration", func(t *testing.T) {
		ci := createTestIntegration(t, "clinic_alice", "alice@example.com", "1//token-a")
		ci.AttachAutomation("cred-1", "wf-1")

		err := repo.Upsert(ctx, ci)
		assert.NoError(t, err)
		assert.NotZero(t, ci.ID)
	})

	t.Run("second upsert overwrites instead of duplicating", func(t *testing.T) {
		ci := createTestIntegration(t, "clinic_bob", "bob@example.com", "1//token-old")
		ci.AttachAutomation("cred-old", "wf-old")
		require.NoError(t, repo.Upsert(ctx, ci))

		updated := createTestIntegration(t, "clinic_bob", "bob@example.com", "1//token-new")
		updated.AttachAutomation("cred-new", "wf-new")
		require.NoError(t, repo.Upsert(ctx, updated))

		var count int64
		require.NoError(t, db.Model(&models.ClinicIntegrationModel{}).
			Where("clinic_id = ?", "clinic_bob").Count(&count).Error)
		assert.Equal(t, int64(1), count)

		found, err := repo.GetByClinicID(ctx, "clinic_bob")
		require.NoError(t, err)
		assert.Equal(t, "1//token-new", found.RefreshToken)
		assert.Equal(t, "cred-new", found.CredentialID)
		assert.Equal(t, "wf-new", found.WorkflowID)
	})
}

func TestClinicIntegrationRepository_TokenEncryptedAtRest(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestRepo(t, db)
	ctx := context.Background()

	ci := createTestIntegration(t, "clinic_carol", "carol@example.com", "1//plain-token")
	require.NoError(t, repo.Upsert(ctx, ci))

	var model models.ClinicIntegrationModel
	require.NoError(t, db.Where("clinic_id = ?", "clinic_carol").First(&model).Error)

	assert.NotEqual(t, "1//plain-token", model.RefreshToken)
	assert.NotContains(t, model.RefreshToken, "plain-token")

	found, err := repo.GetByClinicID(ctx, "clinic_carol")
	require.NoError(t, err)
	assert.Equal(t, "1//plain-token", found.RefreshToken)
}

func TestClinicIntegrationRepository_GetByClinicID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestRepo(t, db)

	_, err := repo.GetByClinicID(context.Background(), "clinic_missing")
	assert.ErrorIs(t, err, integration.ErrIntegrationNotFound)
}

func TestClinicIntegrationRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := newTestRepo(t, db)
	ctx := context.Background()

	ci := createTestIntegration(t, "clinic_erin", "erin@example.com", "1//token-e")
	require.NoError(t, repo.Upsert(ctx, ci))

	require.NoError(t, repo.Delete(ctx, "clinic_erin"))
	assert.ErrorIs(t, repo.Delete(ctx, "clinic_erin"), integration.ErrIntegrationNotFound)
}
