package models

// QuoteModel persists quotes.
type QuoteModel struct {
	ID            uint     `gorm:"primaryKey"`
	Number        string   `gorm:"uniqueIndex;size:50;not null"`
	Sequence      int      `gorm:"uniqueIndex:idx_quote_seq_year;not null"`
	Year          int      `gorm:"uniqueIndex:idx_quote_seq_year;not null"`
	CustomerID    uint     `gorm:"not null;index"`
	CustomerEmail string   `gorm:"size:255;not null;index"`
	Description   string   `gorm:"type:text;not null"`
	TotalAmount   *float64
	ValidUntil    *int64  
	Status        string   `gorm:"size:30;not null;index"`

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (QuoteModel) TableName() string {
	return "quotes"
}
