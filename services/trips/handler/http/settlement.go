package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecovoit/ecovoit/internal/pkg/middleware"
	"github.com/ecovoit/ecovoit/internal/pkg/settlement"
	"github.com/ecovoit/ecovoit/internal/utils"
)

// GetSettlement returns the viewer's settlement state for one trip, the
// single computation every screen renders its rating affordances from
func (h *TripsHandler) GetSettlement(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	state, err := h.tripUC.GetSettlementState(c.Request().Context(),
		middleware.UpstreamTokenFromContext(c), tripID, middleware.UserIDFromContext(c))
	if err != nil {
		return respondServiceError(c, err, "Failed to evaluate settlement state")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Settlement state", state)
}

// SubmitSettlement runs the rating/confirmation submission for one trip.
// The response reports a per-counterparty outcome so a partial failure
// tells the user exactly which rating to retry.
func (h *TripsHandler) SubmitSettlement(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	var sub settlement.Submission
	if err := c.Bind(&sub); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	result, err := h.tripUC.SubmitSettlement(c.Request().Context(),
		middleware.UpstreamTokenFromContext(c), tripID, middleware.UserIDFromContext(c), sub)
	if err != nil {
		return respondServiceError(c, err, "Failed to submit settlement")
	}

	status := http.StatusOK
	message := "Settlement submitted"
	if result.FailedCount > 0 {
		// 207: some ratings persisted, some did not. Nothing was rolled
		// back; the items list says which is which.
		status = http.StatusMultiStatus
		message = "Settlement partially submitted"
	}
	return utils.SuccessResponse(c, status, message, result)
}
