package models

// WorkOrderModel persists repair work orders. There is deliberately no
// back-reference to the originating ticket; that relation lives on the
// ticket's forward pointer.
type WorkOrderModel struct {
	ID             uint     `gorm:"primaryKey"`
	Number         string   `gorm:"uniqueIndex;size:50;not null"`
	Sequence       int      `gorm:"uniqueIndex:idx_work_order_seq_year;not null"`
	Year           int      `gorm:"uniqueIndex:idx_work_order_seq_year;not null"`
	CustomerID     uint     `gorm:"not null;index"`
	CustomerEmail  string   `gorm:"size:255;not null;index"`
	Description    string   `gorm:"type:text;not null"`
	TechnicianName string   `gorm:"size:100"`
	TotalCost      *float64
	Status         string   `gorm:"size:30;not null;index"`

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (WorkOrderModel) TableName() string {
	return "work_orders"
}

// WarrantyWorkOrderModel persists warranty work orders.
type WarrantyWorkOrderModel struct {
	ID             uint     `gorm:"primaryKey"`
	Number         string   `gorm:"uniqueIndex;size:50;not null"`
	Sequence       int      `gorm:"uniqueIndex:idx_warranty_work_order_seq_year;not null"`
	Year           int      `gorm:"uniqueIndex:idx_warranty_work_order_seq_year;not null"`
	CustomerID     uint     `gorm:"not null;index"`
	CustomerEmail  string   `gorm:"size:255;not null;index"`
	Description    string   `gorm:"type:text;not null"`
	TechnicianName string   `gorm:"size:100"`
	TotalCost      *float64
	Status         string   `gorm:"size:30;not null;index"`

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (WarrantyWorkOrderModel) TableName() string {
	return "warranty_work_orders"
}
