package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixflow/internal/application/tracking/usecases"
	"fixflow/internal/shared/constants"
	"fixflow/internal/shared/errors"
	"fixflow/internal/shared/logger"
	"fixflow/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	convertTicketUC usecases.ConvertTicketExecutor
	getTicketUC     usecases.GetTicketExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	convertTicketUC usecases.ConvertTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		convertTicketUC: convertTicketUC,
		getTicketUC:     getTicketUC,
		logger:          logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	customerID, _ := c.Get(constants.ContextKeyCustomerID)
	cmd := req.ToCommand(customerID.(uint))

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ConvertTicket handles POST /tickets/convert
func (h *TicketHandler) ConvertTicket(c *gin.Context) {
	var req ConvertTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("tracking_number is required"))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ConvertTicketCommand{
		TrackingNumber: req.TrackingNumber,
	}

	result, err := h.convertTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket converted successfully", result)
}

// GetTicket handles GET /tickets?number={tracking number}
func (h *TicketHandler) GetTicket(c *gin.Context) {
	number := c.Query("number")
	if number == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("number query parameter is required"))
		return
	}

	customerID, _ := c.Get(constants.ContextKeyCustomerID)

	query := usecases.GetTicketQuery{
		TrackingNumber: number,
		CustomerID:     customerID.(uint),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
