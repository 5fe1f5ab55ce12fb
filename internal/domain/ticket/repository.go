package ticket

import (
	"context"
	"errors"

	"fixflow/internal/domain/tracking"
)

// ErrNotFound is returned when no ticket matches a lookup.
var ErrNotFound = errors.New("ticket not found")

// Repository is the storage port for both ticket kinds. Repair and warranty
// tickets live in separate tables; every query is kind-scoped.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, kind tracking.Kind, id uint) (*Ticket, error)
	FindByNumber(ctx context.Context, kind tracking.Kind, sequence, year int) (*Ticket, error)
	ListByCustomer(ctx context.Context, kind tracking.Kind, customerID uint) ([]*Ticket, error)

	// FindByConversionTarget answers "who converted into this work order?"
	// by scanning the forward-pointer column; there is no stored
	// back-reference on the work-order side. Returns nil without error when
	// no ticket points at the target.
	FindByConversionTarget(ctx context.Context, kind tracking.Kind, workOrderID uint) (*Ticket, error)

	// NextSequence allocates the next tracking-number sequence for the
	// (kind, year) pair.
	NextSequence(ctx context.Context, kind tracking.Kind, year int) (int, error)
}
