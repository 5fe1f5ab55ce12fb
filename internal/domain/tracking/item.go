package tracking

import (
	"errors"
	"time"
)

// ErrBrokenConversionLink is returned when a ticket's conversion pointer
// references a record of the wrong kind or one that no longer exists. The
// primary item is still valid; callers surface the related item as
// unavailable rather than failing the whole request.
var ErrBrokenConversionLink = errors.New("broken conversion link")

// Item is the unified projection of any of the five trackable record kinds,
// consumed by both the authenticated dashboard and the anonymous public
// lookup. Canonical status is always derived through Classify at projection
// time, never stored.
type Item struct {
	Kind          Kind
	ID            uint
	Number        string
	RawStatus     string
	Status        Category
	StatusLabel   string
	CustomerID    uint
	CustomerEmail string
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Optional per-kind fields; zero values mean absent, callers render
	// conditionally.
	TechnicianName string
	TotalCost      *float64
	TotalAmount    *float64
	ValidUntil     *time.Time

	// Conversion fields, tickets only. At most one pointer may be set.
	ConvertedToWorkOrderID         *uint
	ConvertedToWarrantyWorkOrderID *uint
	ConvertedAt                    *time.Time
}

// ConversionTarget reports the kind and id of the record this item converted
// into, if any.
func (i Item) ConversionTarget() (Kind, uint, bool) {
	switch {
	case i.Kind == KindRepairTicket && i.ConvertedToWorkOrderID != nil:
		return KindWorkOrder, *i.ConvertedToWorkOrderID, true
	case i.Kind == KindWarrantyTicket && i.ConvertedToWarrantyWorkOrderID != nil:
		return KindWarrantyWorkOrder, *i.ConvertedToWarrantyWorkOrderID, true
	default:
		return "", 0, false
	}
}
