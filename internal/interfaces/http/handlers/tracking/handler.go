package tracking

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixflow/internal/application/tracking/usecases"
	"fixflow/internal/shared/constants"
	"fixflow/internal/shared/errors"
	"fixflow/internal/shared/logger"
	"fixflow/internal/shared/utils"
)

type TrackingHandler struct {
	publicLookupUC usecases.PublicLookupExecutor
	dashboardUC    usecases.GetDashboardExecutor
	logger         logger.Interface
}

func NewTrackingHandler(
	publicLookupUC usecases.PublicLookupExecutor,
	dashboardUC usecases.GetDashboardExecutor,
) *TrackingHandler {
	return &TrackingHandler{
		publicLookupUC: publicLookupUC,
		dashboardUC:    dashboardUC,
		logger:         logger.NewLogger(),
	}
}

// Track handles POST /track, the anonymous lookup by tracking number and
// email. Requests missing either field are rejected at binding; everything
// else, including malformed numbers, is decided by the use case so the
// failure shape stays uniform.
func (h *TrackingHandler) Track(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("tracking_number and email are required"))
		return
	}

	result, err := h.publicLookupUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Dashboard handles GET /dashboard for the authenticated customer.
func (h *TrackingHandler) Dashboard(c *gin.Context) {
	customerID, exists := c.Get(constants.ContextKeyCustomerID)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing customer identity")
		return
	}

	query := usecases.GetDashboardQuery{
		CustomerID: customerID.(uint),
		Tab:        c.Query("tab"),
	}

	result, err := h.dashboardUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
