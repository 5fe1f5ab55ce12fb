package usecases

import (
	"context"

	"fixflow/internal/domain/quote"
	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/domain/workorder"
)

type mockTicketRepository struct {
	SaveFunc                   func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                 func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc               func(ctx context.Context, kind tracking.Kind, id uint) (*ticket.Ticket, error)
	FindByNumberFunc           func(ctx context.Context, kind tracking.Kind, sequence, year int) (*ticket.Ticket, error)
	ListByCustomerFunc         func(ctx context.Context, kind tracking.Kind, customerID uint) ([]*ticket.Ticket, error)
	FindByConversionTargetFunc func(ctx context.Context, kind tracking.Kind, workOrderID uint) (*ticket.Ticket, error)
	NextSequenceFunc           func(ctx context.Context, kind tracking.Kind, year int) (int, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, kind tracking.Kind, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, kind, id)
	}
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepository) FindByNumber(ctx context.Context, kind tracking.Kind, sequence, year int) (*ticket.Ticket, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, kind, sequence, year)
	}
	return nil, ticket.ErrNotFound
}

func (m *mockTicketRepository) ListByCustomer(ctx context.Context, kind tracking.Kind, customerID uint) ([]*ticket.Ticket, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, kind, customerID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByConversionTarget(ctx context.Context, kind tracking.Kind, workOrderID uint) (*ticket.Ticket, error) {
	if m.FindByConversionTargetFunc != nil {
		return m.FindByConversionTargetFunc(ctx, kind, workOrderID)
	}
	return nil, nil
}

func (m *mockTicketRepository) NextSequence(ctx context.Context, kind tracking.Kind, year int) (int, error) {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(ctx, kind, year)
	}
	return 1, nil
}

type mockWorkOrderRepository struct {
	SaveFunc           func(ctx context.Context, w *workorder.WorkOrder) error
	FindByIDFunc       func(ctx context.Context, kind tracking.Kind, id uint) (*workorder.WorkOrder, error)
	FindByNumberFunc   func(ctx context.Context, kind tracking.Kind, sequence, year int) (*workorder.WorkOrder, error)
	ListByCustomerFunc func(ctx context.Context, kind tracking.Kind, customerID uint) ([]*workorder.WorkOrder, error)
	NextSequenceFunc   func(ctx context.Context, kind tracking.Kind, year int) (int, error)
}

func (m *mockWorkOrderRepository) Save(ctx context.Context, w *workorder.WorkOrder) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, w)
	}
	return nil
}

func (m *mockWorkOrderRepository) FindByID(ctx context.Context, kind tracking.Kind, id uint) (*workorder.WorkOrder, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, kind, id)
	}
	return nil, workorder.ErrNotFound
}

func (m *mockWorkOrderRepository) FindByNumber(ctx context.Context, kind tracking.Kind, sequence, year int) (*workorder.WorkOrder, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, kind, sequence, year)
	}
	return nil, workorder.ErrNotFound
}

func (m *mockWorkOrderRepository) ListByCustomer(ctx context.Context, kind tracking.Kind, customerID uint) ([]*workorder.WorkOrder, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, kind, customerID)
	}
	return nil, nil
}

func (m *mockWorkOrderRepository) NextSequence(ctx context.Context, kind tracking.Kind, year int) (int, error) {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(ctx, kind, year)
	}
	return 1, nil
}

type mockQuoteRepository struct {
	SaveFunc           func(ctx context.Context, q *quote.Quote) error
	FindByIDFunc       func(ctx context.Context, id uint) (*quote.Quote, error)
	FindByNumberFunc   func(ctx context.Context, sequence, year int) (*quote.Quote, error)
	ListByCustomerFunc func(ctx context.Context, customerID uint) ([]*quote.Quote, error)
	NextSequenceFunc   func(ctx context.Context, year int) (int, error)
}

func (m *mockQuoteRepository) Save(ctx context.Context, q *quote.Quote) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, q)
	}
	return nil
}

func (m *mockQuoteRepository) FindByID(ctx context.Context, id uint) (*quote.Quote, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, quote.ErrNotFound
}

func (m *mockQuoteRepository) FindByNumber(ctx context.Context, sequence, year int) (*quote.Quote, error) {
	if m.FindByNumberFunc != nil {
		return m.FindByNumberFunc(ctx, sequence, year)
	}
	return nil, quote.ErrNotFound
}

func (m *mockQuoteRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*quote.Quote, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockQuoteRepository) NextSequence(ctx context.Context, year int) (int, error) {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(ctx, year)
	}
	return 1, nil
}
