package ticket

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fixflow/internal/domain/tracking"
)

// Ticket is an intake record for a physical repair: either a repair ticket
// or a warranty ticket. A ticket may later convert into a work order; the
// conversion is recorded as a forward pointer on the ticket and is
// append-only — once set it is never cleared or repointed.
type Ticket struct {
	id            uint
	kind          tracking.Kind
	number        string
	sequence      int
	year          int
	customerID    uint
	customerEmail string
	description   string
	status        Status

	convertedToWorkOrderID         *uint
	convertedToWarrantyWorkOrderID *uint
	convertedAt                    *time.Time

	createdAt time.Time
	updatedAt time.Time
}

func NewTicket(
	kind tracking.Kind,
	customerID uint,
	customerEmail string,
	description string,
) (*Ticket, error) {
	if !kind.IsTicket() {
		return nil, fmt.Errorf("kind %s is not a ticket kind", kind)
	}
	customerEmail = strings.TrimSpace(strings.ToLower(customerEmail))
	if _, err := mail.ParseAddress(customerEmail); err != nil {
		return nil, fmt.Errorf("invalid customer email")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	now := time.Now()
	return &Ticket{
		kind:          kind,
		customerID:    customerID,
		customerEmail: customerEmail,
		description:   description,
		status:        InitialStatus(kind),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructTicket(
	id uint,
	kind tracking.Kind,
	number string,
	sequence int,
	year int,
	customerID uint,
	customerEmail string,
	description string,
	status Status,
	convertedToWorkOrderID *uint,
	convertedToWarrantyWorkOrderID *uint,
	convertedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !kind.IsTicket() {
		return nil, fmt.Errorf("kind %s is not a ticket kind", kind)
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !status.IsValidFor(kind) {
		return nil, fmt.Errorf("invalid status %s for %s", status, kind)
	}
	if convertedToWorkOrderID != nil && convertedToWarrantyWorkOrderID != nil {
		return nil, fmt.Errorf("ticket %d has both conversion pointers set", id)
	}

	return &Ticket{
		id:                             id,
		kind:                           kind,
		number:                         number,
		sequence:                       sequence,
		year:                           year,
		customerID:                     customerID,
		customerEmail:                  customerEmail,
		description:                    description,
		status:                         status,
		convertedToWorkOrderID:         convertedToWorkOrderID,
		convertedToWarrantyWorkOrderID: convertedToWarrantyWorkOrderID,
		convertedAt:                    convertedAt,
		createdAt:                      createdAt,
		updatedAt:                      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                    { return t.id }
func (t *Ticket) Kind() tracking.Kind         { return t.kind }
func (t *Ticket) Number() string              { return t.number }
func (t *Ticket) Sequence() int               { return t.sequence }
func (t *Ticket) Year() int                   { return t.year }
func (t *Ticket) CustomerID() uint            { return t.customerID }
func (t *Ticket) CustomerEmail() string       { return t.customerEmail }
func (t *Ticket) Description() string         { return t.description }
func (t *Ticket) Status() Status              { return t.status }
func (t *Ticket) ConvertedAt() *time.Time     { return t.convertedAt }
func (t *Ticket) CreatedAt() time.Time        { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time        { return t.updatedAt }
func (t *Ticket) ConvertedToWorkOrderID() *uint {
	return t.convertedToWorkOrderID
}
func (t *Ticket) ConvertedToWarrantyWorkOrderID() *uint {
	return t.convertedToWarrantyWorkOrderID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignNumber records the allocated (sequence, year) pair and the formatted
// tracking number derived from it. A number is assigned exactly once.
func (t *Ticket) AssignNumber(sequence, year int) error {
	if t.number != "" {
		return fmt.Errorf("ticket number is already set")
	}
	if sequence <= 0 {
		return fmt.Errorf("sequence must be positive")
	}
	t.sequence = sequence
	t.year = year
	t.number = tracking.FormatNumber(t.kind, sequence, year)
	return nil
}

func (t *Ticket) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValidFor(t.kind) {
		return fmt.Errorf("invalid %s status: %s", t.kind, newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(t.kind, newStatus) {
		return fmt.Errorf("cannot transition %s from %s to %s", t.kind, t.status, newStatus)
	}
	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// IsConverted reports whether the forward conversion pointer is set.
func (t *Ticket) IsConverted() bool {
	return t.convertedToWorkOrderID != nil || t.convertedToWarrantyWorkOrderID != nil
}

// ConvertTo records the one-time conversion of the ticket into the work
// order with the given id. Pointer, timestamp and status change together;
// the persistence layer must write them in one transaction so the ticket is
// never observably half-converted.
func (t *Ticket) ConvertTo(workOrderID uint) error {
	if workOrderID == 0 {
		return fmt.Errorf("work order ID cannot be zero")
	}
	if t.IsConverted() {
		return fmt.Errorf("ticket %s is already converted", t.number)
	}
	if !t.status.CanTransitionTo(t.kind, StatusConverted) {
		return fmt.Errorf("cannot convert %s ticket in status %s", t.kind, t.status)
	}

	now := time.Now()
	switch t.kind {
	case tracking.KindRepairTicket:
		t.convertedToWorkOrderID = &workOrderID
	case tracking.KindWarrantyTicket:
		t.convertedToWarrantyWorkOrderID = &workOrderID
	}
	t.convertedAt = &now
	t.status = StatusConverted
	t.updatedAt = now
	return nil
}
