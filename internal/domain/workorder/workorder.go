package workorder

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fixflow/internal/domain/tracking"
)

// WorkOrder is the in-shop repair job a ticket converts into: either a
// regular work order or a warranty work order. Progress mutations
// (technician updates, completion) are applied by the CRUD layer; the
// tracking engine only re-reads them.
type WorkOrder struct {
	id             uint
	kind           tracking.Kind
	number         string
	sequence       int
	year           int
	customerID     uint
	customerEmail  string
	description    string
	technicianName string
	totalCost      *float64
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewWorkOrder(
	kind tracking.Kind,
	customerID uint,
	customerEmail string,
	description string,
) (*WorkOrder, error) {
	if !kind.IsWorkOrder() {
		return nil, fmt.Errorf("kind %s is not a work-order kind", kind)
	}
	customerEmail = strings.TrimSpace(strings.ToLower(customerEmail))
	if _, err := mail.ParseAddress(customerEmail); err != nil {
		return nil, fmt.Errorf("invalid customer email")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	now := time.Now()
	return &WorkOrder{
		kind:          kind,
		customerID:    customerID,
		customerEmail: customerEmail,
		description:   description,
		status:        StatusOpen,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructWorkOrder(
	id uint,
	kind tracking.Kind,
	number string,
	sequence int,
	year int,
	customerID uint,
	customerEmail string,
	description string,
	technicianName string,
	totalCost *float64,
	status Status,
	createdAt, updatedAt time.Time,
) (*WorkOrder, error) {
	if id == 0 {
		return nil, fmt.Errorf("work order ID cannot be zero")
	}
	if !kind.IsWorkOrder() {
		return nil, fmt.Errorf("kind %s is not a work-order kind", kind)
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("work order number is required")
	}
	if !status.IsValidFor(kind) {
		return nil, fmt.Errorf("invalid status %s for %s", status, kind)
	}

	return &WorkOrder{
		id:             id,
		kind:           kind,
		number:         number,
		sequence:       sequence,
		year:           year,
		customerID:     customerID,
		customerEmail:  customerEmail,
		description:    description,
		technicianName: technicianName,
		totalCost:      totalCost,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (w *WorkOrder) ID() uint               { return w.id }
func (w *WorkOrder) Kind() tracking.Kind    { return w.kind }
func (w *WorkOrder) Number() string         { return w.number }
func (w *WorkOrder) Sequence() int          { return w.sequence }
func (w *WorkOrder) Year() int              { return w.year }
func (w *WorkOrder) CustomerID() uint       { return w.customerID }
func (w *WorkOrder) CustomerEmail() string  { return w.customerEmail }
func (w *WorkOrder) Description() string    { return w.description }
func (w *WorkOrder) TechnicianName() string { return w.technicianName }
func (w *WorkOrder) TotalCost() *float64    { return w.totalCost }
func (w *WorkOrder) Status() Status         { return w.status }
func (w *WorkOrder) CreatedAt() time.Time   { return w.createdAt }
func (w *WorkOrder) UpdatedAt() time.Time   { return w.updatedAt }

func (w *WorkOrder) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("work order ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("work order ID cannot be zero")
	}
	w.id = id
	return nil
}

// AssignNumber records the allocated (sequence, year) pair and the formatted
// tracking number derived from it. A number is assigned exactly once.
func (w *WorkOrder) AssignNumber(sequence, year int) error {
	if w.number != "" {
		return fmt.Errorf("work order number is already set")
	}
	if sequence <= 0 {
		return fmt.Errorf("sequence must be positive")
	}
	w.sequence = sequence
	w.year = year
	w.number = tracking.FormatNumber(w.kind, sequence, year)
	return nil
}

// Trackable projects the work order onto the unified trackable-item shape.
func (w *WorkOrder) Trackable() (tracking.Item, error) {
	info, err := tracking.Classify(w.kind, w.status.String())
	if err != nil {
		return tracking.Item{}, fmt.Errorf("projecting work order %d: %w", w.id, err)
	}

	return tracking.Item{
		Kind:           w.kind,
		ID:             w.id,
		Number:         w.number,
		RawStatus:      w.status.String(),
		Status:         info.Category,
		StatusLabel:    info.Label,
		CustomerID:     w.customerID,
		CustomerEmail:  w.customerEmail,
		Description:    w.description,
		TechnicianName: w.technicianName,
		TotalCost:      w.totalCost,
		CreatedAt:      w.createdAt,
		UpdatedAt:      w.updatedAt,
	}, nil
}
