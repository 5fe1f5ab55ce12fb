package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixflow/internal/domain/quote"
	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/domain/workorder"
	apperrors "fixflow/internal/shared/errors"
	"fixflow/internal/shared/logger"
)

func dashboardFixtures(t *testing.T) (*mockTicketRepository, *mockWorkOrderRepository, *mockQuoteRepository) {
	t.Helper()

	intake, err := ticket.ReconstructTicket(
		1, tracking.KindRepairTicket, "TK-1/25", 1, 25,
		7, "jane@example.com", "dead battery",
		ticket.StatusIntake, nil, nil, nil,
		testTime().Add(3*time.Hour), testTime().Add(3*time.Hour),
	)
	require.NoError(t, err)

	warranty, err := ticket.ReconstructTicket(
		2, tracking.KindWarrantyTicket, "WTK-1/25", 1, 25,
		7, "jane@example.com", "faulty charger",
		ticket.StatusUnderReview, nil, nil, nil,
		testTime().Add(2*time.Hour), testTime().Add(2*time.Hour),
	)
	require.NoError(t, err)

	order, err := workorder.ReconstructWorkOrder(
		3, tracking.KindWorkOrder, "WO-1/25", 1, 25,
		7, "jane@example.com", "laptop will not boot",
		"sam", nil, workorder.StatusCompleted,
		testTime().Add(time.Hour), testTime().Add(4*time.Hour),
	)
	require.NoError(t, err)

	q, err := quote.ReconstructQuote(
		4, "QT-1/25", 1, 25,
		7, "jane@example.com", "screen replacement",
		nil, nil, quote.StatusDraft,
		testTime(), testTime(),
	)
	require.NoError(t, err)

	tickets := &mockTicketRepository{
		ListByCustomerFunc: func(ctx context.Context, kind tracking.Kind, customerID uint) ([]*ticket.Ticket, error) {
			switch kind {
			case tracking.KindRepairTicket:
				return []*ticket.Ticket{intake}, nil
			default:
				return []*ticket.Ticket{warranty}, nil
			}
		},
	}
	workOrders := &mockWorkOrderRepository{
		ListByCustomerFunc: func(ctx context.Context, kind tracking.Kind, customerID uint) ([]*workorder.WorkOrder, error) {
			if kind == tracking.KindWorkOrder {
				return []*workorder.WorkOrder{order}, nil
			}
			return nil, nil
		},
	}
	quotes := &mockQuoteRepository{
		ListByCustomerFunc: func(ctx context.Context, customerID uint) ([]*quote.Quote, error) {
			return []*quote.Quote{q}, nil
		},
	}
	return tickets, workOrders, quotes
}

func TestDashboardMergesAllKindsNewestFirst(t *testing.T) {
	tickets, workOrders, quotes := dashboardFixtures(t)
	uc := NewGetDashboardUseCase(tickets, workOrders, quotes, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetDashboardQuery{CustomerID: 7})
	require.NoError(t, err)

	assert.Equal(t, "all", result.Tab)
	require.Len(t, result.Items, 4)
	assert.Equal(t, "TK-1/25", result.Items[0].Number)
	assert.Equal(t, "WTK-1/25", result.Items[1].Number)
	assert.Equal(t, "WO-1/25", result.Items[2].Number)
	assert.Equal(t, "QT-1/25", result.Items[3].Number)

	assert.Equal(t, 4, result.Summary.Total)
	assert.Equal(t, 2, result.Summary.Pending)
	assert.Equal(t, 1, result.Summary.Active)
	assert.Equal(t, 1, result.Summary.Completed)
}

func TestDashboardTabFiltering(t *testing.T) {
	tickets, workOrders, quotes := dashboardFixtures(t)
	uc := NewGetDashboardUseCase(tickets, workOrders, quotes, logger.NewLogger())

	cases := []struct {
		tab     string
		numbers []string
	}{
		{"tickets", []string{"TK-1/25", "WTK-1/25"}},
		{"orders", []string{"WO-1/25"}},
		{"quotes", []string{"QT-1/25"}},
	}

	for _, tc := range cases {
		t.Run(tc.tab, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), GetDashboardQuery{CustomerID: 7, Tab: tc.tab})
			require.NoError(t, err)

			numbers := make([]string, 0, len(result.Items))
			for _, item := range result.Items {
				numbers = append(numbers, item.Number)
			}
			assert.Equal(t, tc.numbers, numbers)

			// Switching tabs never changes the counts.
			assert.Equal(t, 4, result.Summary.Total)
		})
	}
}

func TestDashboardRejectsUnknownTab(t *testing.T) {
	tickets, workOrders, quotes := dashboardFixtures(t)
	uc := NewGetDashboardUseCase(tickets, workOrders, quotes, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetDashboardQuery{CustomerID: 7, Tab: "archive"})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestDashboardEmptyCustomer(t *testing.T) {
	uc := NewGetDashboardUseCase(&mockTicketRepository{}, &mockWorkOrderRepository{}, &mockQuoteRepository{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetDashboardQuery{CustomerID: 99})
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Summary.Total)
}
