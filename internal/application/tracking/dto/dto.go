package dto

import (
	"time"

	"fixflow/internal/domain/tracking"
)

// TrackableItemDTO is the wire shape of a projected trackable item. Customer
// identity fields are intentionally absent; the caller already proved
// ownership before the projection is returned.
type TrackableItemDTO struct {
	Kind        string    `json:"kind"`
	ID          uint      `json:"id"`
	Number      string    `json:"number"`
	RawStatus   string    `json:"raw_status"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	TechnicianName string     `json:"technician_name,omitempty"`
	TotalCost      *float64   `json:"total_cost,omitempty"`
	TotalAmount    *float64   `json:"total_amount,omitempty"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	ConvertedAt    *time.Time `json:"converted_at,omitempty"`
}

// FromItem maps a domain projection to its wire shape.
func FromItem(item tracking.Item) TrackableItemDTO {
	return TrackableItemDTO{
		Kind:           item.Kind.String(),
		ID:             item.ID,
		Number:         item.Number,
		RawStatus:      item.RawStatus,
		Status:         item.Status.String(),
		StatusLabel:    item.StatusLabel,
		Description:    item.Description,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
		TechnicianName: item.TechnicianName,
		TotalCost:      item.TotalCost,
		TotalAmount:    item.TotalAmount,
		ValidUntil:     item.ValidUntil,
		ConvertedAt:    item.ConvertedAt,
	}
}

// FromItems maps a slice of projections, preserving order.
func FromItems(items []tracking.Item) []TrackableItemDTO {
	out := make([]TrackableItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, FromItem(item))
	}
	return out
}

// SummaryDTO is the wire shape of the per-category status counts.
type SummaryDTO struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

// FromSummary maps a domain summary to its wire shape.
func FromSummary(s tracking.Summary) SummaryDTO {
	return SummaryDTO{
		Total:     s.Total,
		Pending:   s.Pending,
		Active:    s.Active,
		Completed: s.Completed,
	}
}
