package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/utils"
)

const testToken = "upstream-token"

func envelope(data interface{}) utils.Response {
	return utils.Response{Success: true, Data: data}
}

func TestSearchTrips_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/trips/search", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		assert.Equal(t, "Lyon", r.URL.Query().Get("departure"))
		assert.Equal(t, "Grenoble", r.URL.Query().Get("arrival"))
		assert.Equal(t, "2025-04-01", r.URL.Query().Get("date"))

		json.NewEncoder(w).Encode(envelope([]models.Trip{
			{ID: "trip-1", Departure: "Lyon", Arrival: "Grenoble"},
		}))
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	trips, err := client.SearchTrips(context.Background(), testToken, models.TripSearchQuery{
		Departure: "Lyon", Arrival: "Grenoble", Date: "2025-04-01",
	})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "trip-1", trips[0].ID)
}

func TestSearchTrips_EmptyResultIsNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(envelope([]models.Trip{}))
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	trips, err := client.SearchTrips(context.Background(), testToken, models.TripSearchQuery{
		Departure: "Lyon", Arrival: "Grenoble", Date: "2025-04-01",
	})
	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestRequestToJoin_ConflictIsDuplicate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/trips/trip-1/requests", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(utils.Response{Success: false, Error: "already requested"})
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	err := client.RequestToJoin(context.Background(), testToken, "trip-1")
	assert.True(t, apperrors.IsDuplicateRequest(err))
}

func TestGetMyTrips_UnauthorizedIsSessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	_, err := client.GetMyTrips(context.Background(), testToken)
	assert.True(t, apperrors.IsSessionExpired(err))
}

func TestGetMyTrips_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trips/my-trips", r.URL.Path)
		json.NewEncoder(w).Encode(envelope(models.MyTrips{
			CurrentTrips:  []models.Trip{{ID: "trip-1"}},
			HistoricTrips: []models.Trip{{ID: "trip-2"}, {ID: "trip-3"}},
		}))
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	myTrips, err := client.GetMyTrips(context.Background(), testToken)
	require.NoError(t, err)
	assert.Len(t, myTrips.CurrentTrips, 1)
	assert.Len(t, myTrips.HistoricTrips, 2)
}

func TestCreateTrip_SendsDerivedArrival(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/trips", r.URL.Path)

		var req models.CreateTripRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "10:15", req.ArrivalTime)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(envelope(models.Trip{ID: "trip-1"}))
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	trip, err := client.CreateTrip(context.Background(), testToken, models.CreateTripRequest{
		Departure: "Lyon", Arrival: "Grenoble", Date: "2025-04-01", Time: "09:00",
		AvailableSeats: 2, DurationMinutes: 75, ArrivalTime: "10:15",
	})
	require.NoError(t, err)
	assert.Equal(t, "trip-1", trip.ID)
}

func TestRateAndCompleteAsDriver_PayloadAndPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/trips/trip-1/rate-complete", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "passenger-1", body["passenger_id"])
		assert.Equal(t, float64(4), body["rating"])

		json.NewEncoder(w).Encode(envelope(nil))
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	err := client.RateAndCompleteAsDriver(context.Background(), testToken, "trip-1", "passenger-1", 4)
	require.NoError(t, err)
}

func TestRateDriver_BadRequestIsValidation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trips/trip-1/rate-driver", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(utils.Response{Success: false, Error: "rating out of range"})
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	err := client.RateDriver(context.Background(), testToken, "trip-1", 9)
	assert.True(t, apperrors.IsValidation(err))
}

func TestHandleTripRequest_ServerErrorIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/trips/trip-1/requests/req-1", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	err := client.HandleTripRequest(context.Background(), testToken, "trip-1", "req-1", models.RequestActionAccept)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestConfirmPickup_SendsRole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trips/trip-1/confirm-pickup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "driver", body["role"])

		json.NewEncoder(w).Encode(envelope(nil))
	}))
	defer server.Close()

	client := NewTripClient(server.URL, 5*time.Second)
	err := client.ConfirmPickup(context.Background(), testToken, "trip-1", models.RatingRoleDriver)
	require.NoError(t, err)
}
