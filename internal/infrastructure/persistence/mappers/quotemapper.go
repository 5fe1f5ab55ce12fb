package mappers

import (
	"fmt"

	"fixflow/internal/domain/quote"
	"fixflow/internal/infrastructure/persistence/models"
)

// QuoteMapper converts between quote domain entities and persistence models.
type QuoteMapper interface {
	ToModel(q *quote.Quote) *models.QuoteModel
	ToDomain(model *models.QuoteModel) (*quote.Quote, error)
}

type quoteMapper struct{}

func NewQuoteMapper() QuoteMapper {
	return &quoteMapper{}
}

func (m *quoteMapper) ToModel(q *quote.Quote) *models.QuoteModel {
	return &models.QuoteModel{
		ID:            q.ID(),
		Number:        q.Number(),
		Sequence:      q.Sequence(),
		Year:          q.Year(),
		CustomerID:    q.CustomerID(),
		CustomerEmail: q.CustomerEmail(),
		Description:   q.Description(),
		TotalAmount:   q.TotalAmount(),
		ValidUntil:    timePtrToMilliPtr(q.ValidUntil()),
		Status:        q.Status().String(),
		CreatedAt:     q.CreatedAt().UnixMilli(),
		UpdatedAt:     q.UpdatedAt().UnixMilli(),
	}
}

func (m *quoteMapper) ToDomain(model *models.QuoteModel) (*quote.Quote, error) {
	status, err := quote.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("quote %d: %w", model.ID, err)
	}

	return quote.ReconstructQuote(
		model.ID,
		model.Number,
		model.Sequence,
		model.Year,
		model.CustomerID,
		model.CustomerEmail,
		model.Description,
		model.TotalAmount,
		milliPtrToTimePtr(model.ValidUntil),
		status,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}
