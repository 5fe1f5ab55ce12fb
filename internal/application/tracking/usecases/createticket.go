package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/shared/db"
	apperrors "fixflow/internal/shared/errors"
	"fixflow/internal/shared/logger"
)

type CreateTicketCommand struct {
	Kind          string
	CustomerID    uint
	CustomerEmail string
	Description   string
}

type CreateTicketResult struct {
	ID        uint      `json:"id"`
	Kind      string    `json:"kind"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTicketUseCase handles intake: a new repair or warranty ticket in its
// initial status, with a tracking number allocated from the per-(kind, year)
// sequence. Allocation and insert run in one transaction so a failed insert
// never burns a sequence value visible to a concurrent intake.
type CreateTicketUseCase struct {
	tickets   ticket.Repository
	txManager *db.TransactionManager
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

func NewCreateTicketUseCase(
	tickets ticket.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		tickets:   tickets,
		txManager: txManager,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	kind, err := tracking.NewKind(cmd.Kind)
	if err != nil || !kind.IsTicket() {
		return nil, apperrors.NewValidationError("kind must be repair_ticket or warranty_ticket")
	}

	description := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Description))

	t, err := ticket.NewTicket(kind, cmd.CustomerID, cmd.CustomerEmail, description)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		year := tracking.CurrentYear()
		seq, err := uc.tickets.NextSequence(txCtx, kind, year)
		if err != nil {
			return err
		}
		if err := t.AssignNumber(seq, year); err != nil {
			return err
		}
		return uc.tickets.Save(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "kind", kind, "customer_id", cmd.CustomerID, "error", err)
		return nil, apperrors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "kind", kind, "id", t.ID(), "number", t.Number())

	return &CreateTicketResult{
		ID:        t.ID(),
		Kind:      kind.String(),
		Number:    t.Number(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
	}, nil
}
