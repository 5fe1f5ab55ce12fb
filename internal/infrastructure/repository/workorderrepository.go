package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fixflow/internal/domain/tracking"
	"fixflow/internal/domain/workorder"
	"fixflow/internal/infrastructure/persistence/mappers"
	"fixflow/internal/infrastructure/persistence/models"
	"fixflow/internal/shared/db"
)

// WorkOrderRepository persists repair and warranty work orders in their
// separate tables, dispatching on kind.
type WorkOrderRepository struct {
	db     *gorm.DB
	mapper mappers.WorkOrderMapper
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{
		db:     db,
		mapper: mappers.NewWorkOrderMapper(),
	}
}

func (r *WorkOrderRepository) Save(ctx context.Context, w *workorder.WorkOrder) error {
	tx := db.GetTxFromContext(ctx, r.db)

	switch w.Kind() {
	case tracking.KindWorkOrder:
		model := r.mapper.ToModel(w)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save work order: %w", err)
		}
		return w.SetID(model.ID)
	case tracking.KindWarrantyWorkOrder:
		model := r.mapper.ToWarrantyModel(w)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save warranty work order: %w", err)
		}
		return w.SetID(model.ID)
	default:
		return fmt.Errorf("unsupported work-order kind: %s", w.Kind())
	}
}

func (r *WorkOrderRepository) FindByID(ctx context.Context, kind tracking.Kind, id uint) (*workorder.WorkOrder, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	switch kind {
	case tracking.KindWorkOrder:
		var model models.WorkOrderModel
		if err := tx.First(&model, id).Error; err != nil {
			return nil, wrapWorkOrderErr(err)
		}
		return r.mapper.ToDomain(&model)
	case tracking.KindWarrantyWorkOrder:
		var model models.WarrantyWorkOrderModel
		if err := tx.First(&model, id).Error; err != nil {
			return nil, wrapWorkOrderErr(err)
		}
		return r.mapper.WarrantyToDomain(&model)
	default:
		return nil, fmt.Errorf("unsupported work-order kind: %s", kind)
	}
}

func (r *WorkOrderRepository) FindByNumber(ctx context.Context, kind tracking.Kind, sequence, year int) (*workorder.WorkOrder, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	switch kind {
	case tracking.KindWorkOrder:
		var model models.WorkOrderModel
		if err := tx.Where("sequence = ? AND year = ?", sequence, year).First(&model).Error; err != nil {
			return nil, wrapWorkOrderErr(err)
		}
		return r.mapper.ToDomain(&model)
	case tracking.KindWarrantyWorkOrder:
		var model models.WarrantyWorkOrderModel
		if err := tx.Where("sequence = ? AND year = ?", sequence, year).First(&model).Error; err != nil {
			return nil, wrapWorkOrderErr(err)
		}
		return r.mapper.WarrantyToDomain(&model)
	default:
		return nil, fmt.Errorf("unsupported work-order kind: %s", kind)
	}
}

func (r *WorkOrderRepository) ListByCustomer(ctx context.Context, kind tracking.Kind, customerID uint) ([]*workorder.WorkOrder, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	switch kind {
	case tracking.KindWorkOrder:
		var rows []models.WorkOrderModel
		if err := tx.Where("customer_id = ?", customerID).
			Order("created_at DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list work orders: %w", err)
		}
		orders := make([]*workorder.WorkOrder, 0, len(rows))
		for i := range rows {
			w, err := r.mapper.ToDomain(&rows[i])
			if err != nil {
				return nil, err
			}
			orders = append(orders, w)
		}
		return orders, nil
	case tracking.KindWarrantyWorkOrder:
		var rows []models.WarrantyWorkOrderModel
		if err := tx.Where("customer_id = ?", customerID).
			Order("created_at DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list warranty work orders: %w", err)
		}
		orders := make([]*workorder.WorkOrder, 0, len(rows))
		for i := range rows {
			w, err := r.mapper.WarrantyToDomain(&rows[i])
			if err != nil {
				return nil, err
			}
			orders = append(orders, w)
		}
		return orders, nil
	default:
		return nil, fmt.Errorf("unsupported work-order kind: %s", kind)
	}
}

func (r *WorkOrderRepository) NextSequence(ctx context.Context, kind tracking.Kind, year int) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model interface{}
	switch kind {
	case tracking.KindWorkOrder:
		model = &models.WorkOrderModel{}
	case tracking.KindWarrantyWorkOrder:
		model = &models.WarrantyWorkOrderModel{}
	default:
		return 0, fmt.Errorf("unsupported work-order kind: %s", kind)
	}

	return nextSequence(tx, model, year)
}

func wrapWorkOrderErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return workorder.ErrNotFound
	}
	return fmt.Errorf("failed to find work order: %w", err)
}
