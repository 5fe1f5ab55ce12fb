package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fixflow/internal/domain/quote"
	"fixflow/internal/infrastructure/persistence/mappers"
	"fixflow/internal/infrastructure/persistence/models"
	"fixflow/internal/shared/db"
)

// QuoteRepository persists quotes.
type QuoteRepository struct {
	db     *gorm.DB
	mapper mappers.QuoteMapper
}

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{
		db:     db,
		mapper: mappers.NewQuoteMapper(),
	}
}

func (r *QuoteRepository) Save(ctx context.Context, q *quote.Quote) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(q)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}
	return q.SetID(model.ID)
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uint) (*quote.Quote, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.QuoteModel
	if err := tx.First(&model, id).Error; err != nil {
		return nil, wrapQuoteErr(err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *QuoteRepository) FindByNumber(ctx context.Context, sequence, year int) (*quote.Quote, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.QuoteModel
	if err := tx.Where("sequence = ? AND year = ?", sequence, year).First(&model).Error; err != nil {
		return nil, wrapQuoteErr(err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *QuoteRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*quote.Quote, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.QuoteModel
	if err := tx.Where("customer_id = ?", customerID).
		Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	quotes := make([]*quote.Quote, 0, len(rows))
	for i := range rows {
		q, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (r *QuoteRepository) NextSequence(ctx context.Context, year int) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	return nextSequence(tx, &models.QuoteModel{}, year)
}

func wrapQuoteErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return quote.ErrNotFound
	}
	return fmt.Errorf("failed to find quote: %w", err)
}
