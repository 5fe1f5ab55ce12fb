package ticket

import "fixflow/internal/application/tracking/usecases"

type CreateTicketRequest struct {
	Kind          string `json:"kind" binding:"required,oneof=repair_ticket warranty_ticket"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Description   string `json:"description" binding:"required,max=5000"`
}

type ConvertTicketRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required,max=32" validate:"required,trackingnumber"`
}

func (r *CreateTicketRequest) ToCommand(customerID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Kind:          r.Kind,
		CustomerID:    customerID,
		CustomerEmail: r.CustomerEmail,
		Description:   r.Description,
	}
}
