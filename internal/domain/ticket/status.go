package ticket

import (
	"fmt"

	"fixflow/internal/domain/tracking"
)

// Status is the raw status vocabulary of a ticket. Repair and warranty
// tickets share the lifecycle shape but not the vocabulary; validity is
// checked per kind.
type Status string

const (
	// Repair ticket statuses.
	StatusIntake           Status = "intake"
	StatusDiagnosing       Status = "diagnosing"
	StatusAwaitingCustomer Status = "awaiting_customer"
	StatusClosed           Status = "closed"

	// Warranty ticket statuses.
	StatusReceived    Status = "received"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"

	// Shared terminal status set by conversion.
	StatusConverted Status = "converted"
)

var repairStatuses = map[Status]bool{
	StatusIntake:           true,
	StatusDiagnosing:       true,
	StatusAwaitingCustomer: true,
	StatusConverted:        true,
	StatusClosed:           true,
}

var warrantyStatuses = map[Status]bool{
	StatusReceived:    true,
	StatusUnderReview: true,
	StatusApproved:    true,
	StatusConverted:   true,
	StatusRejected:    true,
}

var repairTransitions = map[Status][]Status{
	StatusIntake:           {StatusDiagnosing, StatusClosed},
	StatusDiagnosing:       {StatusAwaitingCustomer, StatusConverted, StatusClosed},
	StatusAwaitingCustomer: {StatusDiagnosing, StatusConverted, StatusClosed},
}

var warrantyTransitions = map[Status][]Status{
	StatusReceived:    {StatusUnderReview, StatusRejected},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {StatusConverted, StatusRejected},
}

func (s Status) String() string {
	return string(s)
}

// IsValidFor reports whether the status belongs to the vocabulary of the
// given ticket kind.
func (s Status) IsValidFor(kind tracking.Kind) bool {
	switch kind {
	case tracking.KindRepairTicket:
		return repairStatuses[s]
	case tracking.KindWarrantyTicket:
		return warrantyStatuses[s]
	default:
		return false
	}
}

// CanTransitionTo reports whether the kind's lifecycle allows moving from
// this status to newStatus. Converted is terminal for both kinds.
func (s Status) CanTransitionTo(kind tracking.Kind, newStatus Status) bool {
	var transitions map[Status][]Status
	switch kind {
	case tracking.KindRepairTicket:
		transitions = repairTransitions
	case tracking.KindWarrantyTicket:
		transitions = warrantyTransitions
	default:
		return false
	}

	for _, allowed := range transitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// InitialStatus returns the status a freshly created ticket of the kind
// starts in.
func InitialStatus(kind tracking.Kind) Status {
	if kind == tracking.KindWarrantyTicket {
		return StatusReceived
	}
	return StatusIntake
}

func NewStatus(kind tracking.Kind, s string) (Status, error) {
	status := Status(s)
	if !status.IsValidFor(kind) {
		return "", fmt.Errorf("invalid %s status: %s", kind, s)
	}
	return status, nil
}

// AllStatuses returns the full vocabulary for a ticket kind; used by the
// classifier exhaustiveness check.
func AllStatuses(kind tracking.Kind) []Status {
	var table map[Status]bool
	switch kind {
	case tracking.KindRepairTicket:
		table = repairStatuses
	case tracking.KindWarrantyTicket:
		table = warrantyStatuses
	}
	out := make([]Status, 0, len(table))
	for s := range table {
		out = append(out, s)
	}
	return out
}
