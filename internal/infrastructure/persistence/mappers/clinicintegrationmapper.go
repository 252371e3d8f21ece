package mappers

import (
	"github.com/TeodorSim/TransfIT/internal/domain/integration"
	"github.com/TeodorSim/TransfIT/internal/infrastructure/persistence/models"
)

// ClinicIntegrationMapper handles the conversion between domain entities and persistence models.
type ClinicIntegrationMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *integration.ClinicIntegration) *models.ClinicIntegrationModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.ClinicIntegrationModel) *integration.ClinicIntegration
}

// ClinicIntegrationMapperImpl is the concrete implementation of ClinicIntegrationMapper.
type ClinicIntegrationMapperImpl struct{}

// NewClinicIntegrationMapper creates a new ClinicIntegrationMapper.
func NewClinicIntegrationMapper() ClinicIntegrationMapper {
	return &ClinicIntegrationMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *ClinicIntegrationMapperImpl) ToModel(entity *integration.ClinicIntegration) *models.ClinicIntegrationModel {
	if entity == nil {
		return nil
	}
	return &models.ClinicIntegrationModel{
		ID:           entity.ID,
		ClinicID:     entity.ClinicID,
		Email:        entity.Email,
		RefreshToken: entity.RefreshToken,
		CredentialID: entity.CredentialID,
		WorkflowID:   entity.WorkflowID,
		Status:       entity.Status,
		LastSyncedAt: entity.LastSyncedAt,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *ClinicIntegrationMapperImpl) ToDomain(model *models.ClinicIntegrationModel) *integration.ClinicIntegration {
	if model == nil {
		return nil
	}
	return &integration.ClinicIntegration{
		ID:           model.ID,
		ClinicID:     model.ClinicID,
		Email:        model.Email,
		RefreshToken: model.RefreshToken,
		CredentialID: model.CredentialID,
		WorkflowID:   model.WorkflowID,
		Status:       model.Status,
		LastSyncedAt: model.LastSyncedAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
