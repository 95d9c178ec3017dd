package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/middleware"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/pkg/settlement"
	"github.com/ecovoit/ecovoit/services/trips"
	"github.com/ecovoit/ecovoit/services/trips/mocks"
)

const (
	testToken  = "upstream-token"
	testUserID = "user-1"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, testUserID)
	c.Set(middleware.ContextKeyUpstreamToken, testToken)
	return c, rec
}

func TestCreateTrip_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		CreateTrip(gomock.Any(), testToken, gomock.Any()).
		Return(&models.Trip{ID: "trip-1"}, nil)

	body := `{"departure":"Lyon","arrival":"Grenoble","date":"2025-04-01","time":"09:00","available_seats":2,"duration_minutes":75}`
	c, rec := newContext(http.MethodPost, "/trips", body)

	require.NoError(t, handler.CreateTrip(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTrip_ValidationMapsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		CreateTrip(gomock.Any(), testToken, gomock.Any()).
		Return(nil, fmt.Errorf("route duration is required: %w", apperrors.ErrValidation))

	c, rec := newContext(http.MethodPost, "/trips", `{"departure":"Lyon","arrival":"Grenoble"}`)

	require.NoError(t, handler.CreateTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchTrips_EmptyResultIsOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		SearchTrips(gomock.Any(), testToken, models.TripSearchQuery{
			Departure: "Lyon", Arrival: "Grenoble", Date: "2025-04-01",
		}).
		Return([]models.Trip{}, nil)

	c, rec := newContext(http.MethodGet, "/trips/search?departure=Lyon&arrival=Grenoble&date=2025-04-01", "")

	require.NoError(t, handler.SearchTrips(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    []models.Trip `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data)
}

func TestGetMyTrips_SessionExpiredMapsTo401(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		GetMyTrips(gomock.Any(), testToken, testUserID).
		Return(nil, fmt.Errorf("rejected: %w", apperrors.ErrSessionExpired))

	c, rec := newContext(http.MethodGet, "/trips/my-trips", "")

	require.NoError(t, handler.GetMyTrips(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Session expired")
}

func TestRequestToJoin_DuplicateMapsTo409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		RequestToJoin(gomock.Any(), testToken, "trip-1").
		Return(fmt.Errorf("already requested: %w", apperrors.ErrDuplicateRequest))

	c, rec := newContext(http.MethodPost, "/trips/trip-1/join", "")
	c.SetParamNames("tripID")
	c.SetParamValues("trip-1")

	require.NoError(t, handler.RequestToJoin(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already requested to join")
}

func TestHandleTripRequest_Accept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		HandleTripRequest(gomock.Any(), testToken, "trip-1", "req-1", models.RequestActionAccept).
		Return(nil)

	c, rec := newContext(http.MethodPut, "/trips/trip-1/requests/req-1", `{"action":"accept"}`)
	c.SetParamNames("tripID", "requestID")
	c.SetParamValues("trip-1", "req-1")

	require.NoError(t, handler.HandleTripRequest(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSettlement_ReturnsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		GetSettlementState(gomock.Any(), testToken, "trip-1", testUserID).
		Return(&settlement.State{
			Kind:           settlement.KindAwaitingPassengerRating,
			Role:           models.RatingRolePassenger,
			Counterparties: []string{"driver-1"},
		}, nil)

	c, rec := newContext(http.MethodGet, "/trips/trip-1/settlement", "")
	c.SetParamNames("tripID")
	c.SetParamValues("trip-1")

	require.NoError(t, handler.GetSettlement(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "awaiting_passenger_rating")
}

func TestSubmitSettlement_FullSuccessIs200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		SubmitSettlement(gomock.Any(), testToken, "trip-1", testUserID, gomock.Any()).
		Return(&models.SettlementResult{
			TripID:         "trip-1",
			Role:           models.RatingRolePassenger,
			SubmittedCount: 1,
			Items: []models.SettlementItemOutcome{
				{CounterpartyID: "driver-1", Value: 5, Status: models.SettlementSubmitted},
			},
		}, nil)

	c, rec := newContext(http.MethodPost, "/trips/trip-1/settlement", `{"driver_rating":5}`)
	c.SetParamNames("tripID")
	c.SetParamValues("trip-1")

	require.NoError(t, handler.SubmitSettlement(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitSettlement_PartialFailureIs207(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		SubmitSettlement(gomock.Any(), testToken, "trip-1", testUserID, gomock.Any()).
		Return(&models.SettlementResult{
			TripID:         "trip-1",
			Role:           models.RatingRoleDriver,
			SubmittedCount: 1,
			FailedCount:    1,
			Items: []models.SettlementItemOutcome{
				{CounterpartyID: "passenger-1", Value: 4, Status: models.SettlementSubmitted},
				{CounterpartyID: "passenger-2", Value: 3, Status: models.SettlementFailed, Error: "backend unavailable"},
			},
		}, nil)

	body := `{"passenger_ratings":[{"passenger_id":"passenger-1","value":4},{"passenger_id":"passenger-2","value":3}]}`
	c, rec := newContext(http.MethodPost, "/trips/trip-1/settlement", body)
	c.SetParamNames("tripID")
	c.SetParamValues("trip-1")

	require.NoError(t, handler.SubmitSettlement(c))
	assert.Equal(t, http.StatusMultiStatus, rec.Code)
	assert.Contains(t, rec.Body.String(), "partially")
}

func TestSubmitSettlement_NotParticipantMapsTo403(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		SubmitSettlement(gomock.Any(), testToken, "trip-1", testUserID, gomock.Any()).
		Return(nil, apperrors.ErrNotParticipant)

	c, rec := newContext(http.MethodPost, "/trips/trip-1/settlement", `{"driver_rating":5}`)
	c.SetParamNames("tripID")
	c.SetParamValues("trip-1")

	require.NoError(t, handler.SubmitSettlement(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmitSettlement_TripNotEndedMapsTo409(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTripUC(ctrl)
	handler := NewTripsHandler(mockUC)

	mockUC.EXPECT().
		SubmitSettlement(gomock.Any(), testToken, "trip-1", testUserID, gomock.Any()).
		Return(nil, apperrors.ErrTripNotEnded)

	c, rec := newContext(http.MethodPost, "/trips/trip-1/settlement", `{"driver_rating":5}`)
	c.SetParamNames("tripID")
	c.SetParamValues("trip-1")

	require.NoError(t, handler.SubmitSettlement(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

var _ trips.TripUC = (*mocks.MockTripUC)(nil)
