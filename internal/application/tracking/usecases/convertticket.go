package usecases

import (
	"context"
	"errors"
	"time"

	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/domain/workorder"
	"fixflow/internal/shared/db"
	apperrors "fixflow/internal/shared/errors"
	"fixflow/internal/shared/logger"
)

type ConvertTicketCommand struct {
	TrackingNumber string
}

type ConvertTicketResult struct {
	TicketID        uint      `json:"ticket_id"`
	TicketNumber    string    `json:"ticket_number"`
	WorkOrderID     uint      `json:"work_order_id"`
	WorkOrderKind   string    `json:"work_order_kind"`
	WorkOrderNumber string    `json:"work_order_number"`
	ConvertedAt     time.Time `json:"converted_at"`
}

// ConvertTicketUseCase performs the one write the tracking engine owns:
// turning an approved ticket into a work order. The work-order insert and
// the ticket's pointer, timestamp and status change commit in a single
// transaction; a ticket is never observably half-converted. The pointer is
// append-only, so a second conversion attempt is a conflict, not a repoint.
type ConvertTicketUseCase struct {
	tickets    ticket.Repository
	workOrders workorder.Repository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewConvertTicketUseCase(
	tickets ticket.Repository,
	workOrders workorder.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *ConvertTicketUseCase {
	return &ConvertTicketUseCase{
		tickets:    tickets,
		workOrders: workOrders,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *ConvertTicketUseCase) Execute(ctx context.Context, cmd ConvertTicketCommand) (*ConvertTicketResult, error) {
	num, err := tracking.ParseNumber(cmd.TrackingNumber)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tracking number format")
	}
	if !num.Kind.IsTicket() {
		return nil, apperrors.NewValidationError("only tickets can be converted")
	}

	t, err := uc.tickets.FindByNumber(ctx, num.Kind, num.Sequence, num.Year)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket for conversion", "kind", num.Kind, "error", err)
		return nil, apperrors.NewInternalError("failed to convert ticket")
	}

	if t.IsConverted() {
		return nil, apperrors.NewConflictError("ticket is already converted")
	}

	targetKind, err := t.Kind().ConversionTargetKind()
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	var w *workorder.WorkOrder
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		w, err = workorder.NewWorkOrder(targetKind, t.CustomerID(), t.CustomerEmail(), t.Description())
		if err != nil {
			return err
		}

		year := tracking.CurrentYear()
		seq, err := uc.workOrders.NextSequence(txCtx, targetKind, year)
		if err != nil {
			return err
		}
		if err := w.AssignNumber(seq, year); err != nil {
			return err
		}
		if err := uc.workOrders.Save(txCtx, w); err != nil {
			return err
		}

		if err := t.ConvertTo(w.ID()); err != nil {
			return err
		}
		return uc.tickets.Update(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("ticket conversion failed", "number", t.Number(), "error", err)
		return nil, apperrors.NewInternalError("failed to convert ticket")
	}

	uc.logger.Infow("ticket converted",
		"ticket_number", t.Number(),
		"work_order_number", w.Number(),
		"work_order_kind", targetKind)

	return &ConvertTicketResult{
		TicketID:        t.ID(),
		TicketNumber:    t.Number(),
		WorkOrderID:     w.ID(),
		WorkOrderKind:   targetKind.String(),
		WorkOrderNumber: w.Number(),
		ConvertedAt:     *t.ConvertedAt(),
	}, nil
}
