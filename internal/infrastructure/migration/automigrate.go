package migration

import (
	"fixflow/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every model the automigrate path manages.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.RepairTicketModel{},
		&models.WarrantyTicketModel{},
		&models.WorkOrderModel{},
		&models.WarrantyWorkOrderModel{},
		&models.QuoteModel{},
	}
}
