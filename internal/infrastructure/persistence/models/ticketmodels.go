package models

// RepairTicketModel persists repair tickets. The conversion pointer is the
// only stored side of the ticket/work-order relation; it is indexed so the
// backward lookup (work order -> originating ticket) stays a cheap scan.
type RepairTicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	Number        string `gorm:"uniqueIndex;size:50;not null"`
	Sequence      int    `gorm:"uniqueIndex:idx_repair_ticket_seq_year;not null"`
	Year          int    `gorm:"uniqueIndex:idx_repair_ticket_seq_year;not null"`
	CustomerID    uint   `gorm:"not null;index"`
	CustomerEmail string `gorm:"size:255;not null;index"`
	Description   string `gorm:"type:text;not null"`
	Status        string `gorm:"size:30;not null;index"`

	ConvertedToWorkOrderID *uint  `gorm:"index"`
	ConvertedAt            *int64

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (RepairTicketModel) TableName() string {
	return "repair_tickets"
}

// WarrantyTicketModel persists warranty tickets; its conversion pointer may
// only reference warranty work orders.
type WarrantyTicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	Number        string `gorm:"uniqueIndex;size:50;not null"`
	Sequence      int    `gorm:"uniqueIndex:idx_warranty_ticket_seq_year;not null"`
	Year          int    `gorm:"uniqueIndex:idx_warranty_ticket_seq_year;not null"`
	CustomerID    uint   `gorm:"not null;index"`
	CustomerEmail string `gorm:"size:255;not null;index"`
	Description   string `gorm:"type:text;not null"`
	Status        string `gorm:"size:30;not null;index"`

	ConvertedToWarrantyWorkOrderID *uint  `gorm:"index"`
	ConvertedAt                    *int64

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (WarrantyTicketModel) TableName() string {
	return "warranty_tickets"
}
