package quote

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no quote matches a lookup.
var ErrNotFound = errors.New("quote not found")

// Repository is the storage port for quotes.
type Repository interface {
	Save(ctx context.Context, q *Quote) error
	FindByID(ctx context.Context, id uint) (*Quote, error)
	FindByNumber(ctx context.Context, sequence, year int) (*Quote, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]*Quote, error)
	NextSequence(ctx context.Context, year int) (int, error)
}
