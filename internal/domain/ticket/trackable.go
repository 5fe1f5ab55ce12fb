package ticket

import (
	"fmt"

	"fixflow/internal/domain/tracking"
)

// Trackable projects the ticket onto the unified trackable-item shape.
// Canonical status is recomputed through the classifier on every call; an
// unmapped raw status propagates as tracking.ErrUnmappedStatus.
func (t *Ticket) Trackable() (tracking.Item, error) {
	info, err := tracking.Classify(t.kind, t.status.String())
	if err != nil {
		return tracking.Item{}, fmt.Errorf("projecting ticket %d: %w", t.id, err)
	}

	return tracking.Item{
		Kind:          t.kind,
		ID:            t.id,
		Number:        t.number,
		RawStatus:     t.status.String(),
		Status:        info.Category,
		StatusLabel:   info.Label,
		CustomerID:    t.customerID,
		CustomerEmail: t.customerEmail,
		Description:   t.description,
		CreatedAt:     t.createdAt,
		UpdatedAt:     t.updatedAt,

		ConvertedToWorkOrderID:         t.convertedToWorkOrderID,
		ConvertedToWarrantyWorkOrderID: t.convertedToWarrantyWorkOrderID,
		ConvertedAt:                    t.convertedAt,
	}, nil
}
