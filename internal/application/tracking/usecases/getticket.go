package usecases

import (
	"context"
	"errors"

	"fixflow/internal/application/tracking/dto"
	"fixflow/internal/application/tracking/services"
	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	apperrors "fixflow/internal/shared/errors"
	"fixflow/internal/shared/logger"
)

type GetTicketQuery struct {
	TrackingNumber string
	CustomerID     uint
}

type GetTicketResult struct {
	Item    dto.TrackableItemDTO  `json:"item"`
	Related *dto.TrackableItemDTO `json:"related,omitempty"`
}

// GetTicketUseCase is the authenticated ticket-detail read used by the
// dashboard drill-down. Ownership is enforced with the same not-found
// response an unknown number gets, so the endpoint leaks nothing about
// other customers' tickets.
type GetTicketUseCase struct {
	tickets  ticket.Repository
	resolver *services.ConversionResolver
	logger   logger.Interface
}

func NewGetTicketUseCase(
	tickets ticket.Repository,
	resolver *services.ConversionResolver,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		tickets:  tickets,
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	num, err := tracking.ParseNumber(query.TrackingNumber)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid tracking number format")
	}
	if !num.Kind.IsTicket() {
		return nil, apperrors.NewValidationError("not a ticket number")
	}

	t, err := uc.tickets.FindByNumber(ctx, num.Kind, num.Sequence, num.Year)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		uc.logger.Errorw("failed to load ticket", "kind", num.Kind, "error", err)
		return nil, apperrors.NewInternalError("failed to load ticket")
	}

	if t.CustomerID() != query.CustomerID {
		uc.logger.Warnw("ticket detail ownership mismatch", "kind", num.Kind, "customer_id", query.CustomerID)
		return nil, apperrors.NewNotFoundError("ticket not found")
	}

	item, err := t.Trackable()
	if err != nil {
		uc.logger.Errorw("failed to project ticket", "id", t.ID(), "error", err)
		return nil, apperrors.NewInternalError("failed to load ticket")
	}

	result := &GetTicketResult{Item: dto.FromItem(item)}

	related, err := uc.resolver.Forward(ctx, t)
	if err != nil {
		if errors.Is(err, tracking.ErrBrokenConversionLink) {
			uc.logger.Warnw("broken conversion link", "number", t.Number(), "error", err)
		} else {
			uc.logger.Errorw("failed to resolve related work order", "number", t.Number(), "error", err)
		}
	} else if related != nil {
		relatedDTO := dto.FromItem(*related)
		result.Related = &relatedDTO
	}

	return result, nil
}
