package workorder

import (
	"fmt"

	"fixflow/internal/domain/tracking"
)

// Status is the raw status vocabulary of a work order. The two work-order
// kinds share the early lifecycle but diverge at the tail: repair work
// orders are delivered, warranty work orders are returned.
type Status string

const (
	StatusOpen         Status = "open"
	StatusInProgress   Status = "in_progress"
	StatusWaitingParts Status = "waiting_parts"
	StatusQualityCheck Status = "quality_check"
	StatusPartsOrdered Status = "parts_ordered"
	StatusCompleted    Status = "completed"
	StatusDelivered    Status = "delivered"
	StatusReturned     Status = "returned"
)

var repairOrderStatuses = map[Status]bool{
	StatusOpen:         true,
	StatusInProgress:   true,
	StatusWaitingParts: true,
	StatusQualityCheck: true,
	StatusCompleted:    true,
	StatusDelivered:    true,
}

var warrantyOrderStatuses = map[Status]bool{
	StatusOpen:         true,
	StatusInProgress:   true,
	StatusPartsOrdered: true,
	StatusCompleted:    true,
	StatusReturned:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValidFor(kind tracking.Kind) bool {
	switch kind {
	case tracking.KindWorkOrder:
		return repairOrderStatuses[s]
	case tracking.KindWarrantyWorkOrder:
		return warrantyOrderStatuses[s]
	default:
		return false
	}
}

func NewStatus(kind tracking.Kind, s string) (Status, error) {
	status := Status(s)
	if !status.IsValidFor(kind) {
		return "", fmt.Errorf("invalid %s status: %s", kind, s)
	}
	return status, nil
}

// AllStatuses returns the full vocabulary for a work-order kind; used by the
// classifier exhaustiveness check.
func AllStatuses(kind tracking.Kind) []Status {
	var table map[Status]bool
	switch kind {
	case tracking.KindWorkOrder:
		table = repairOrderStatuses
	case tracking.KindWarrantyWorkOrder:
		table = warrantyOrderStatuses
	}
	out := make([]Status, 0, len(table))
	for s := range table {
		out = append(out, s)
	}
	return out
}
