package mappers

import (
	"fmt"

	"fixflow/internal/domain/tracking"
	"fixflow/internal/domain/workorder"
	"fixflow/internal/infrastructure/persistence/models"
)

// WorkOrderMapper converts between work-order domain entities and the two
// work-order persistence models.
type WorkOrderMapper interface {
	ToModel(w *workorder.WorkOrder) *models.WorkOrderModel
	ToWarrantyModel(w *workorder.WorkOrder) *models.WarrantyWorkOrderModel
	ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error)
	WarrantyToDomain(model *models.WarrantyWorkOrderModel) (*workorder.WorkOrder, error)
}

type workOrderMapper struct{}

func NewWorkOrderMapper() WorkOrderMapper {
	return &workOrderMapper{}
}

func (m *workOrderMapper) ToModel(w *workorder.WorkOrder) *models.WorkOrderModel {
	return &models.WorkOrderModel{
		ID:             w.ID(),
		Number:         w.Number(),
		Sequence:       w.Sequence(),
		Year:           w.Year(),
		CustomerID:     w.CustomerID(),
		CustomerEmail:  w.CustomerEmail(),
		Description:    w.Description(),
		TechnicianName: w.TechnicianName(),
		TotalCost:      w.TotalCost(),
		Status:         w.Status().String(),
		CreatedAt:      w.CreatedAt().UnixMilli(),
		UpdatedAt:      w.UpdatedAt().UnixMilli(),
	}
}

func (m *workOrderMapper) ToWarrantyModel(w *workorder.WorkOrder) *models.WarrantyWorkOrderModel {
	return &models.WarrantyWorkOrderModel{
		ID:             w.ID(),
		Number:         w.Number(),
		Sequence:       w.Sequence(),
		Year:           w.Year(),
		CustomerID:     w.CustomerID(),
		CustomerEmail:  w.CustomerEmail(),
		Description:    w.Description(),
		TechnicianName: w.TechnicianName(),
		TotalCost:      w.TotalCost(),
		Status:         w.Status().String(),
		CreatedAt:      w.CreatedAt().UnixMilli(),
		UpdatedAt:      w.UpdatedAt().UnixMilli(),
	}
}

func (m *workOrderMapper) ToDomain(model *models.WorkOrderModel) (*workorder.WorkOrder, error) {
	status, err := workorder.NewStatus(tracking.KindWorkOrder, model.Status)
	if err != nil {
		return nil, fmt.Errorf("work order %d: %w", model.ID, err)
	}

	return workorder.ReconstructWorkOrder(
		model.ID,
		tracking.KindWorkOrder,
		model.Number,
		model.Sequence,
		model.Year,
		model.CustomerID,
		model.CustomerEmail,
		model.Description,
		model.TechnicianName,
		model.TotalCost,
		status,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}

func (m *workOrderMapper) WarrantyToDomain(model *models.WarrantyWorkOrderModel) (*workorder.WorkOrder, error) {
	status, err := workorder.NewStatus(tracking.KindWarrantyWorkOrder, model.Status)
	if err != nil {
		return nil, fmt.Errorf("warranty work order %d: %w", model.ID, err)
	}

	return workorder.ReconstructWorkOrder(
		model.ID,
		tracking.KindWarrantyWorkOrder,
		model.Number,
		model.Sequence,
		model.Year,
		model.CustomerID,
		model.CustomerEmail,
		model.Description,
		model.TechnicianName,
		model.TotalCost,
		status,
		milliToTime(model.CreatedAt),
		milliToTime(model.UpdatedAt),
	)
}
