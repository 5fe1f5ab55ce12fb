package usecases

import (
	"context"
	"fmt"

	"fixflow/internal/application/tracking/dto"
	"fixflow/internal/domain/quote"
	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/domain/workorder"
	apperrors "fixflow/internal/shared/errors"
	"fixflow/internal/shared/logger"
)

type GetDashboardQuery struct {
	CustomerID uint
	Tab        string
}

type GetDashboardResult struct {
	Tab     string                 `json:"tab"`
	Items   []dto.TrackableItemDTO `json:"items"`
	Summary dto.SummaryDTO         `json:"summary"`
}

// GetDashboardUseCase assembles the customer's unified timeline: five
// per-kind collections, projected onto the common item shape, merged newest
// first, filtered by tab. The summary always covers the full timeline so
// the counts do not change when the customer switches tabs.
type GetDashboardUseCase struct {
	tickets    ticket.Repository
	workOrders workorder.Repository
	quotes     quote.Repository
	logger     logger.Interface
}

func NewGetDashboardUseCase(
	tickets ticket.Repository,
	workOrders workorder.Repository,
	quotes quote.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		tickets:    tickets,
		workOrders: workOrders,
		quotes:     quotes,
		logger:     logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error) {
	tab := tracking.Tab(query.Tab)
	if query.Tab == "" {
		tab = tracking.TabAll
	}
	if !tab.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown tab: %s", query.Tab))
	}

	collections := make([][]tracking.Item, 0, 5)

	for _, kind := range []tracking.Kind{tracking.KindRepairTicket, tracking.KindWarrantyTicket} {
		tickets, err := uc.tickets.ListByCustomer(ctx, kind, query.CustomerID)
		if err != nil {
			uc.logger.Errorw("failed to list tickets", "kind", kind, "customer_id", query.CustomerID, "error", err)
			return nil, apperrors.NewInternalError("failed to load dashboard")
		}
		items := make([]tracking.Item, 0, len(tickets))
		for _, t := range tickets {
			item, err := t.Trackable()
			if err != nil {
				uc.logger.Warnw("skipping unprojectable ticket", "kind", kind, "id", t.ID(), "error", err)
				continue
			}
			items = append(items, item)
		}
		collections = append(collections, items)
	}

	for _, kind := range []tracking.Kind{tracking.KindWorkOrder, tracking.KindWarrantyWorkOrder} {
		orders, err := uc.workOrders.ListByCustomer(ctx, kind, query.CustomerID)
		if err != nil {
			uc.logger.Errorw("failed to list work orders", "kind", kind, "customer_id", query.CustomerID, "error", err)
			return nil, apperrors.NewInternalError("failed to load dashboard")
		}
		items := make([]tracking.Item, 0, len(orders))
		for _, w := range orders {
			item, err := w.Trackable()
			if err != nil {
				uc.logger.Warnw("skipping unprojectable work order", "kind", kind, "id", w.ID(), "error", err)
				continue
			}
			items = append(items, item)
		}
		collections = append(collections, items)
	}

	quotes, err := uc.quotes.ListByCustomer(ctx, query.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to list quotes", "customer_id", query.CustomerID, "error", err)
		return nil, apperrors.NewInternalError("failed to load dashboard")
	}
	quoteItems := make([]tracking.Item, 0, len(quotes))
	for _, q := range quotes {
		item, err := q.Trackable()
		if err != nil {
			uc.logger.Warnw("skipping unprojectable quote", "id", q.ID(), "error", err)
			continue
		}
		quoteItems = append(quoteItems, item)
	}
	collections = append(collections, quoteItems)

	timeline := tracking.MergeTimeline(collections...)
	visible := tracking.FilterByTab(timeline, tab)
	summary := tracking.Summarize(timeline)

	return &GetDashboardResult{
		Tab:     string(tab),
		Items:   dto.FromItems(visible),
		Summary: dto.FromSummary(summary),
	}, nil
}
