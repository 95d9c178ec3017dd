package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/logger"
	"github.com/ecovoit/ecovoit/internal/pkg/middleware"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/utils"
	"github.com/ecovoit/ecovoit/services/trips"
)

// TripsHandler handles HTTP requests for trip operations
type TripsHandler struct {
	tripUC trips.TripUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripUC trips.TripUC) *TripsHandler {
	return &TripsHandler{
		tripUC: tripUC,
	}
}

// CreateTrip handles a new trip offer from the authenticated driver
func (h *TripsHandler) CreateTrip(c echo.Context) error {
	var req models.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CreateTrip(c.Request().Context(), middleware.UpstreamTokenFromContext(c), req)
	if err != nil {
		return respondServiceError(c, err, "Failed to create trip")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// SearchTrips handles public trip search
func (h *TripsHandler) SearchTrips(c echo.Context) error {
	query := models.TripSearchQuery{
		Departure: c.QueryParam("departure"),
		Arrival:   c.QueryParam("arrival"),
		Date:      c.QueryParam("date"),
		Time:      c.QueryParam("time"),
	}

	results, err := h.tripUC.SearchTrips(c.Request().Context(), middleware.UpstreamTokenFromContext(c), query)
	if err != nil {
		return respondServiceError(c, err, "Failed to search trips")
	}

	// An empty result set is a normal answer, not an error.
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", results)
}

// GetMyTrips returns the viewer's trips with settlement states attached
func (h *TripsHandler) GetMyTrips(c echo.Context) error {
	view, err := h.tripUC.GetMyTrips(c.Request().Context(),
		middleware.UpstreamTokenFromContext(c), middleware.UserIDFromContext(c))
	if err != nil {
		return respondServiceError(c, err, "Failed to load trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", view)
}

// RequestToJoin files a join request on a trip for the viewer
func (h *TripsHandler) RequestToJoin(c echo.Context) error {
	tripID := c.Param("tripID")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Trip ID is required")
	}

	err := h.tripUC.RequestToJoin(c.Request().Context(), middleware.UpstreamTokenFromContext(c), tripID)
	if err != nil {
		return respondServiceError(c, err, "Failed to request to join trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Join request sent", nil)
}

// HandleTripRequest lets the driver accept or reject a join request
func (h *TripsHandler) HandleTripRequest(c echo.Context) error {
	tripID := c.Param("tripID")
	requestID := c.Param("requestID")
	if tripID == "" || requestID == "" {
		return utils.BadRequestResponse(c, "Trip ID and request ID are required")
	}

	var req struct {
		Action models.RequestAction `json:"action"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	err := h.tripUC.HandleTripRequest(c.Request().Context(),
		middleware.UpstreamTokenFromContext(c), tripID, requestID, req.Action)
	if err != nil {
		return respondServiceError(c, err, "Failed to handle trip request")
	}

	logger.Info("trip request handled", logrus.Fields{
		"trip_id":    tripID,
		"request_id": requestID,
		"action":     string(req.Action),
	})
	return utils.SuccessResponse(c, http.StatusOK, "Request "+string(req.Action)+"ed", nil)
}

// respondServiceError maps the error taxonomy onto HTTP statuses. Errors
// never leave state half-updated locally; the caller may simply re-trigger.
func respondServiceError(c echo.Context, err error, fallback string) error {
	switch {
	case apperrors.IsSessionExpired(err):
		return utils.UnauthorizedResponse(c, "Session expired, please log in again")
	case apperrors.IsDuplicateRequest(err):
		return utils.ConflictResponse(c, "You already requested to join this trip")
	case apperrors.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	case err == apperrors.ErrNotParticipant:
		return utils.ForbiddenResponse(c, err.Error())
	case err == apperrors.ErrTripNotEnded:
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error(fallback, logrus.Fields{"error": err.Error()})
		return utils.BadGatewayResponse(c, fallback)
	}
}
