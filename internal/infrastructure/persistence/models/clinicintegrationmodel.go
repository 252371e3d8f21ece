package models

import "time"

// ClinicIntegrationModel represents the database persistence model for
// clinic integrations. RefreshToken holds ciphertext, never the raw
// token.
type ClinicIntegrationModel struct {
	ID           uint   `gorm:"primarykey"`
	ClinicID     string `gorm:"not null;size:255;uniqueIndex:idx_clinic_id;column:clinic_id"`
	Email        string `gorm:"not null;size:255;index:idx_clinic_email"`
	RefreshToken string `gorm:"not null;type:text"`
	CredentialID string `gorm:"size:255;column:credential_id"`
	WorkflowID   string `gorm:"size:255;column:workflow_id"`
	Status       string `gorm:"not null;size:20;default:active"`
	LastSyncedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (ClinicIntegrationModel) TableName() string {
	return "clinic_integrations"
}
