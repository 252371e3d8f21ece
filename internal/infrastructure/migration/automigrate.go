package migration

import (
	"github.com/TeodorSim/TransfIT/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ClinicIntegrationModel{},
	}
}
