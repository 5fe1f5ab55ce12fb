package mappers

import (
	"fmt"

	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket domain entities and the two ticket
// persistence models. Repair and warranty tickets live in separate tables
// with kind-specific conversion-pointer columns.
type TicketMapper interface {
	ToRepairModel(t *ticket.Ticket) *models.RepairTicketModel
	ToWarrantyModel(t *ticket.Ticket) *models.WarrantyTicketModel
	RepairToDomain(model *models.RepairTicketModel) (*ticket.Ticket, error)
	WarrantyToDomain(model *models.WarrantyTicketModel) (*ticket.Ticket, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToRepairModel(t *ticket.Ticket) *models.RepairTicketModel {
	return &models.RepairTicketModel{
		ID:                     t.ID(),
		Number:                 t.Number(),
		Sequence:               t.Sequence(),
		Year:                   t.Year(),
		CustomerID:             t.CustomerID(),
		CustomerEmail:          t.CustomerEmail(),
		Description:            t.Description(),
		Status:                 t.Status().String(),
		ConvertedToWorkOrderID: t.ConvertedToWorkOrderID(),
		ConvertedAt:            timePtrToMilliPtr(t.ConvertedAt()),
		CreatedAt:              t.CreatedAt().UnixMilli(),
		UpdatedAt:              t.UpdatedAt().UnixMilli(),
	}
}

func (m *ticketMapper) ToWarrantyModel(t *ticket.Ticket) *models.WarrantyTicketModel {
	return &models.WarrantyTicketModel{
		ID:                             t.ID(),
		Number:                         t.Number(),
		Sequence:                       t.Sequence(),
		Year:                           t.Year(),
		CustomerID:                     t.CustomerID(),
		CustomerEmail:                  t.CustomerEmail(),
		Description:                    t.Description(),
		Status:                         t.Status().String(),
		ConvertedToWarrantyWorkOrderID: t.ConvertedToWarrantyWorkOrderID(),
		ConvertedAt:                    timePtrToMilliPtr(t.ConvertedAt()),
		CreatedAt:                      t.CreatedAt().UnixMilli(),
		UpdatedAt:                      t.UpdatedAt().UnixMilli(),
	}
}

func (m *ticketMapper) RepairToDomain(model *models.RepairTicketModel) (*ticket.Ticket, error) {
	status, err := ticket.NewStatus(tracking.KindRepairTicket, model.Status)
	if err != nil {
		return nil, fmt.Errorf("repair ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		tracking.KindRepairTicket,
		model.Number,
		model.Sequence,
		model.Year,
		model.CustomerID,
		model.CustomerEmail,
		model.Description,
		status,
		model.ConvertedToWorkOrderID,
		nil,
		milliPtrToTimePtr(model.ConvertedAt),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}

func (m *ticketMapper) WarrantyToDomain(model *models.WarrantyTicketModel) (*ticket.Ticket, error) {
	status, err := ticket.NewStatus(tracking.KindWarrantyTicket, model.Status)
	if err != nil {
		return nil, fmt.Errorf("warranty ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		tracking.KindWarrantyTicket,
		model.Number,
		model.Sequence,
		model.Year,
		model.CustomerID,
		model.CustomerEmail,
		model.Description,
		status,
		nil,
		model.ConvertedToWarrantyWorkOrderID,
		milliPtrToTimePtr(model.ConvertedAt),
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}
