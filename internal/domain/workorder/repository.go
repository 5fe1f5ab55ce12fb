package workorder

import (
	"context"
	"errors"

	"fixflow/internal/domain/tracking"
)

// ErrNotFound is returned when no work order matches a lookup.
var ErrNotFound = errors.New("work order not found")

// Repository is the storage port for both work-order kinds; regular and
// warranty work orders live in separate tables.
type Repository interface {
	Save(ctx context.Context, w *WorkOrder) error
	FindByID(ctx context.Context, kind tracking.Kind, id uint) (*WorkOrder, error)
	FindByNumber(ctx context.Context, kind tracking.Kind, sequence, year int) (*WorkOrder, error)
	ListByCustomer(ctx context.Context, kind tracking.Kind, customerID uint) ([]*WorkOrder, error)
	NextSequence(ctx context.Context, kind tracking.Kind, year int) (int, error)
}
