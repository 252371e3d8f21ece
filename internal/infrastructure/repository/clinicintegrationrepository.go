package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/persistence/mappers"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/persistence/models"
)

// TokenCipher seals token material before it is written and opens it
// on the way back out.
type TokenCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// ClinicIntegrationRepository implements the integration.Repository
// interface using GORM with Model/Mapper separation. Refresh tokens
// are encrypted at this boundary so nothing above it ever handles
// ciphertext and nothing below it ever sees plaintext.
type ClinicIntegrationRepository struct {
	db     *gorm.DB
	mapper mappers.ClinicIntegrationMapper
	cipher TokenCipher
}

// NewClinicIntegrationRepository creates a new ClinicIntegrationRepository.
func NewClinicIntegrationRepository(db *gorm.DB, cipher TokenCipher) integration.Repository {
	return &ClinicIntegrationRepository{
		db:     db,
		mapper: mappers.NewClinicIntegrationMapper(),
		cipher: cipher,
	}
}

// Upsert inserts the integration or, when the clinic already has a
// row, overwrites its token and automation references in place.
func (r *ClinicIntegrationRepository) Upsert(ctx context.Context, entity *integration.ClinicIntegration) error {
	sealed, err := r.cipher.Encrypt(entity.RefreshToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	model := r.mapper.ToModel(entity)
	model.RefreshToken = sealed

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "clinic_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "refresh_token", "credential_id", "workflow_id",
			"status", "last_synced_at", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert clinic integration: %w", err)
	}

	entity.ID = model.ID
	return nil
}

func (r *ClinicIntegrationRepository) GetByClinicID(ctx context.Context, clinicID string) (*integration.ClinicIntegration, error) {
	var model models.ClinicIntegrationModel
	err := r.db.WithContext(ctx).Where("clinic_id = ?", clinicID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, integration.ErrIntegrationNotFound
		}
		return nil, fmt.Errorf("failed to get clinic integration: %w", err)
	}
	return r.toDomain(&model)
}

func (r *ClinicIntegrationRepository) Delete(ctx context.Context, clinicID string) error {
	result := r.db.WithContext(ctx).
		Where("clinic_id = ?", clinicID).
		Delete(&models.ClinicIntegrationModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete clinic integration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return integration.ErrIntegrationNotFound
	}
	return nil
}

func (r *ClinicIntegrationRepository) toDomain(model *models.ClinicIntegrationModel) (*integration.ClinicIntegration, error) {
	entity := r.mapper.ToDomain(model)
	plain, err := r.cipher.Decrypt(model.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}
	entity.RefreshToken = plain
	return entity, nil
}
