package usecases

import (
	"context"
	"errors"
	"strings"

	"fixflow/internal/application/tracking/dto"
	"fixflow/internal/application/tracking/services"
	"fixflow/internal/domain/quote"
	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/domain/workorder"
	apperrors "fixflow/internal/shared/errors"
	"fixflow/internal/shared/logger"
)

type PublicLookupQuery struct {
	TrackingNumber string
	Email          string
}

type PublicLookupResult struct {
	Item    dto.TrackableItemDTO  `json:"item"`
	Related *dto.TrackableItemDTO `json:"related,omitempty"`
}

// PublicLookupUseCase is the anonymous tracking gate. Every failure mode
// collapses into one indistinguishable not-found response: malformed number,
// unknown number, known number with the wrong email. Differential responses
// here would let a caller enumerate tracking numbers or probe email
// ownership.
type PublicLookupUseCase struct {
	tickets    ticket.Repository
	workOrders workorder.Repository
	quotes     quote.Repository
	resolver   *services.ConversionResolver
	logger     logger.Interface
}

func NewPublicLookupUseCase(
	tickets ticket.Repository,
	workOrders workorder.Repository,
	quotes quote.Repository,
	resolver *services.ConversionResolver,
	logger logger.Interface,
) *PublicLookupUseCase {
	return &PublicLookupUseCase{
		tickets:    tickets,
		workOrders: workOrders,
		quotes:     quotes,
		resolver:   resolver,
		logger:     logger,
	}
}

// uniformNotFound is the single response shape for every lookup miss.
func uniformNotFound() error {
	return apperrors.NewNotFoundError("no matching record found")
}

func (uc *PublicLookupUseCase) Execute(ctx context.Context, query PublicLookupQuery) (*PublicLookupResult, error) {
	num, err := tracking.ParseNumber(query.TrackingNumber)
	if err != nil {
		// Parse failures never reach storage, but the response must not
		// reveal that the format itself was the problem.
		return nil, uniformNotFound()
	}

	email := strings.TrimSpace(strings.ToLower(query.Email))
	if email == "" {
		return nil, uniformNotFound()
	}

	item, related, err := uc.lookup(ctx, num, email)
	if err != nil {
		return nil, err
	}

	result := &PublicLookupResult{Item: dto.FromItem(*item)}
	if related != nil {
		relatedDTO := dto.FromItem(*related)
		result.Related = &relatedDTO
	}

	uc.logger.Infow("public lookup succeeded", "kind", num.Kind, "number", item.Number)
	return result, nil
}

func (uc *PublicLookupUseCase) lookup(ctx context.Context, num tracking.Number, email string) (*tracking.Item, *tracking.Item, error) {
	switch {
	case num.Kind.IsTicket():
		t, err := uc.tickets.FindByNumber(ctx, num.Kind, num.Sequence, num.Year)
		if err != nil {
			return nil, nil, uc.missOrInternal(err, ticket.ErrNotFound, num)
		}
		if !strings.EqualFold(t.CustomerEmail(), email) {
			uc.logger.Warnw("public lookup email mismatch", "kind", num.Kind)
			return nil, nil, uniformNotFound()
		}
		item, err := t.Trackable()
		if err != nil {
			return nil, nil, apperrors.NewInternalError("failed to resolve record")
		}
		related := uc.resolveRelated(ctx, func(ctx context.Context) (*tracking.Item, error) {
			return uc.resolver.Forward(ctx, t)
		}, item.Number)
		return &item, related, nil

	case num.Kind.IsWorkOrder():
		w, err := uc.workOrders.FindByNumber(ctx, num.Kind, num.Sequence, num.Year)
		if err != nil {
			return nil, nil, uc.missOrInternal(err, workorder.ErrNotFound, num)
		}
		if !strings.EqualFold(w.CustomerEmail(), email) {
			uc.logger.Warnw("public lookup email mismatch", "kind", num.Kind)
			return nil, nil, uniformNotFound()
		}
		item, err := w.Trackable()
		if err != nil {
			return nil, nil, apperrors.NewInternalError("failed to resolve record")
		}
		related := uc.resolveRelated(ctx, func(ctx context.Context) (*tracking.Item, error) {
			return uc.resolver.Backward(ctx, w)
		}, item.Number)
		return &item, related, nil

	default: // quote
		q, err := uc.quotes.FindByNumber(ctx, num.Sequence, num.Year)
		if err != nil {
			return nil, nil, uc.missOrInternal(err, quote.ErrNotFound, num)
		}
		if !strings.EqualFold(q.CustomerEmail(), email) {
			uc.logger.Warnw("public lookup email mismatch", "kind", num.Kind)
			return nil, nil, uniformNotFound()
		}
		item, err := q.Trackable()
		if err != nil {
			return nil, nil, apperrors.NewInternalError("failed to resolve record")
		}
		return &item, nil, nil
	}
}

func (uc *PublicLookupUseCase) missOrInternal(err, notFound error, num tracking.Number) error {
	if errors.Is(err, notFound) {
		uc.logger.Infow("public lookup miss", "kind", num.Kind)
		return uniformNotFound()
	}
	uc.logger.Errorw("public lookup storage failure", "kind", num.Kind, "error", err)
	return apperrors.NewInternalError("failed to resolve record")
}

// resolveRelated loads the conversion counterpart, degrading to "no related
// item" on a broken link so a dangling pointer never breaks the primary
// lookup.
func (uc *PublicLookupUseCase) resolveRelated(
	ctx context.Context,
	resolve func(ctx context.Context) (*tracking.Item, error),
	number string,
) *tracking.Item {
	related, err := resolve(ctx)
	if err != nil {
		if errors.Is(err, tracking.ErrBrokenConversionLink) {
			uc.logger.Warnw("broken conversion link", "number", number, "error", err)
			return nil
		}
		uc.logger.Errorw("failed to resolve related item", "number", number, "error", err)
		return nil
	}
	return related
}
