package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/infrastructure/persistence/mappers"
	"fixflow/internal/infrastructure/persistence/models"
	"fixflow/internal/shared/db"
)

// TicketRepository persists repair and warranty tickets in their separate
// tables, dispatching on kind.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	switch t.Kind() {
	case tracking.KindRepairTicket:
		model := r.mapper.ToRepairModel(t)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save repair ticket: %w", err)
		}
		return t.SetID(model.ID)
	case tracking.KindWarrantyTicket:
		model := r.mapper.ToWarrantyModel(t)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save warranty ticket: %w", err)
		}
		return t.SetID(model.ID)
	default:
		return fmt.Errorf("unsupported ticket kind: %s", t.Kind())
	}
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	switch t.Kind() {
	case tracking.KindRepairTicket:
		model := r.mapper.ToRepairModel(t)
		result := tx.Model(&models.RepairTicketModel{}).Where("id = ?", model.ID).Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update repair ticket: %w", result.Error)
		}
		return nil
	case tracking.KindWarrantyTicket:
		model := r.mapper.ToWarrantyModel(t)
		result := tx.Model(&models.WarrantyTicketModel{}).Where("id = ?", model.ID).Updates(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update warranty ticket: %w", result.Error)
		}
		return nil
	default:
		return fmt.Errorf("unsupported ticket kind: %s", t.Kind())
	}
}

func (r *TicketRepository) FindByID(ctx context.Context, kind tracking.Kind, id uint) (*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	switch kind {
	case tracking.KindRepairTicket:
		var model models.RepairTicketModel
		if err := tx.First(&model, id).Error; err != nil {
			return nil, wrapTicketErr(err)
		}
		return r.mapper.RepairToDomain(&model)
	case tracking.KindWarrantyTicket:
		var model models.WarrantyTicketModel
		if err := tx.First(&model, id).Error; err != nil {
			return nil, wrapTicketErr(err)
		}
		return r.mapper.WarrantyToDomain(&model)
	default:
		return nil, fmt.Errorf("unsupported ticket kind: %s", kind)
	}
}

func (r *TicketRepository) FindByNumber(ctx context.Context, kind tracking.Kind, sequence, year int) (*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	switch kind {
	case tracking.KindRepairTicket:
		var model models.RepairTicketModel
		if err := tx.Where("sequence = ? AND year = ?", sequence, year).First(&model).Error; err != nil {
			return nil, wrapTicketErr(err)
		}
		return r.mapper.RepairToDomain(&model)
	case tracking.KindWarrantyTicket:
		var model models.WarrantyTicketModel
		if err := tx.Where("sequence = ? AND year = ?", sequence, year).First(&model).Error; err != nil {
			return nil, wrapTicketErr(err)
		}
		return r.mapper.WarrantyToDomain(&model)
	default:
		return nil, fmt.Errorf("unsupported ticket kind: %s", kind)
	}
}

func (r *TicketRepository) ListByCustomer(ctx context.Context, kind tracking.Kind, customerID uint) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	switch kind {
	case tracking.KindRepairTicket:
		var rows []models.RepairTicketModel
		if err := tx.Where("customer_id = ?", customerID).
			Order("created_at DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list repair tickets: %w", err)
		}
		tickets := make([]*ticket.Ticket, 0, len(rows))
		for i := range rows {
			t, err := r.mapper.RepairToDomain(&rows[i])
			if err != nil {
				return nil, err
			}
			tickets = append(tickets, t)
		}
		return tickets, nil
	case tracking.KindWarrantyTicket:
		var rows []models.WarrantyTicketModel
		if err := tx.Where("customer_id = ?", customerID).
			Order("created_at DESC").Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list warranty tickets: %w", err)
		}
		tickets := make([]*ticket.Ticket, 0, len(rows))
		for i := range rows {
			t, err := r.mapper.WarrantyToDomain(&rows[i])
			if err != nil {
				return nil, err
			}
			tickets = append(tickets, t)
		}
		return tickets, nil
	default:
		return nil, fmt.Errorf("unsupported ticket kind: %s", kind)
	}
}

// FindByConversionTarget scans the indexed forward-pointer column for the
// ticket that converted into the given work order. Returns nil, nil when no
// ticket points at it.
func (r *TicketRepository) FindByConversionTarget(ctx context.Context, kind tracking.Kind, workOrderID uint) (*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	switch kind {
	case tracking.KindRepairTicket:
		var model models.RepairTicketModel
		err := tx.Where("converted_to_work_order_id = ?", workOrderID).First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion pointers: %w", err)
		}
		return r.mapper.RepairToDomain(&model)
	case tracking.KindWarrantyTicket:
		var model models.WarrantyTicketModel
		err := tx.Where("converted_to_warranty_work_order_id = ?", workOrderID).First(&model).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan conversion pointers: %w", err)
		}
		return r.mapper.WarrantyToDomain(&model)
	default:
		return nil, fmt.Errorf("unsupported ticket kind: %s", kind)
	}
}

func (r *TicketRepository) NextSequence(ctx context.Context, kind tracking.Kind, year int) (int, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model interface{}
	switch kind {
	case tracking.KindRepairTicket:
		model = &models.RepairTicketModel{}
	case tracking.KindWarrantyTicket:
		model = &models.WarrantyTicketModel{}
	default:
		return 0, fmt.Errorf("unsupported ticket kind: %s", kind)
	}

	return nextSequence(tx, model, year)
}

func wrapTicketErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket.ErrNotFound
	}
	return fmt.Errorf("failed to find ticket: %w", err)
}
