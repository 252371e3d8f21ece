package integration

import "context"

// Repository persists clinic integrations. Upsert is keyed by clinic
// ID so a returning clinic overwrites its previous token and
// automation references instead of accumulating rows.
type Repository interface {
	Upsert(ctx context.Context, integration *ClinicIntegration) error
	GetByClinicID(ctx context.Context, clinicID string) (*ClinicIntegration, error)
	Delete(ctx context.Context, clinicID string) error
}
