// Package services holds application services shared by the tracking use
// cases.
package services

import (
	"context"
	"errors"
	"fmt"

	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/domain/workorder"
)

// ConversionResolver resolves the conversion relationship between tickets
// and work orders in both directions. Forward follows the ticket's stored
// pointer; Backward scans the indexed pointer column, since work orders
// carry no back-reference.
type ConversionResolver struct {
	tickets    ticket.Repository
	workOrders workorder.Repository
}

func NewConversionResolver(tickets ticket.Repository, workOrders workorder.Repository) *ConversionResolver {
	return &ConversionResolver{
		tickets:    tickets,
		workOrders: workOrders,
	}
}

// Forward returns the projection of the work order the ticket converted
// into, or nil when the ticket was never converted. A pointer at a record
// of the wrong kind or at a record that no longer exists yields
// tracking.ErrBrokenConversionLink.
func (r *ConversionResolver) Forward(ctx context.Context, t *ticket.Ticket) (*tracking.Item, error) {
	if !t.IsConverted() {
		return nil, nil
	}

	targetKind, err := t.Kind().ConversionTargetKind()
	if err != nil {
		return nil, fmt.Errorf("ticket %s: %w", t.Number(), tracking.ErrBrokenConversionLink)
	}

	var targetID uint
	switch targetKind {
	case tracking.KindWorkOrder:
		if t.ConvertedToWorkOrderID() == nil {
			return nil, fmt.Errorf("ticket %s carries a cross-kind conversion pointer: %w",
				t.Number(), tracking.ErrBrokenConversionLink)
		}
		targetID = *t.ConvertedToWorkOrderID()
	case tracking.KindWarrantyWorkOrder:
		if t.ConvertedToWarrantyWorkOrderID() == nil {
			return nil, fmt.Errorf("ticket %s carries a cross-kind conversion pointer: %w",
				t.Number(), tracking.ErrBrokenConversionLink)
		}
		targetID = *t.ConvertedToWarrantyWorkOrderID()
	}

	w, err := r.workOrders.FindByID(ctx, targetKind, targetID)
	if err != nil {
		if errors.Is(err, workorder.ErrNotFound) {
			return nil, fmt.Errorf("ticket %s points at missing %s %d: %w",
				t.Number(), targetKind, targetID, tracking.ErrBrokenConversionLink)
		}
		return nil, fmt.Errorf("failed to load conversion target: %w", err)
	}

	item, err := w.Trackable()
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Backward returns the projection of the ticket that converted into the
// given work order, or nil when no ticket points at it.
func (r *ConversionResolver) Backward(ctx context.Context, w *workorder.WorkOrder) (*tracking.Item, error) {
	sourceKind, err := w.Kind().ConversionSourceKind()
	if err != nil {
		return nil, nil
	}

	t, err := r.tickets.FindByConversionTarget(ctx, sourceKind, w.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to scan for converting ticket: %w", err)
	}
	if t == nil {
		return nil, nil
	}

	item, err := t.Trackable()
	if err != nil {
		return nil, err
	}
	return &item, nil
}
