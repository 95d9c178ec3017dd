package gateway_http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	httpclient "github.com/ecovoit/ecovoit/internal/pkg/http"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/pkg/observability"
	"github.com/ecovoit/ecovoit/internal/utils"
)

// TripClient is an HTTP client for the trips backend
type TripClient struct {
	client *httpclient.Client
}

// NewTripClient creates a new trips backend client
func NewTripClient(tripsServiceURL string, timeout time.Duration) *TripClient {
	return &TripClient{
		client: httpclient.NewClient(tripsServiceURL, timeout),
	}
}

// CreateTrip offers a new trip on behalf of the authenticated driver
func (g *TripClient) CreateTrip(ctx context.Context, token string, req models.CreateTripRequest) (*models.Trip, error) {
	var trip models.Trip
	err := g.doJSON(ctx, token, http.MethodPost, "/trips", req, &trip, "create_trip")
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// SearchTrips queries public trips; an empty result is not an error
func (g *TripClient) SearchTrips(ctx context.Context, token string, query models.TripSearchQuery) ([]models.Trip, error) {
	params := url.Values{}
	params.Set("departure", query.Departure)
	params.Set("arrival", query.Arrival)
	params.Set("date", query.Date)
	if query.Time != "" {
		params.Set("time", query.Time)
	}

	var trips []models.Trip
	err := g.doJSON(ctx, token, http.MethodGet, "/trips/search?"+params.Encode(), nil, &trips, "search_trips")
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return trips, nil
}

// GetMyTrips fetches the viewer's current and historic trips
func (g *TripClient) GetMyTrips(ctx context.Context, token string) (*models.MyTrips, error) {
	var myTrips models.MyTrips
	err := g.doJSON(ctx, token, http.MethodGet, "/trips/my-trips", nil, &myTrips, "get_my_trips")
	if err != nil {
		return nil, err
	}
	return &myTrips, nil
}

// GetTrip fetches a single trip with its requests, confirmations and
// ratings
func (g *TripClient) GetTrip(ctx context.Context, token, tripID string) (*models.Trip, error) {
	var trip models.Trip
	err := g.doJSON(ctx, token, http.MethodGet, "/trips/"+tripID, nil, &trip, "get_trip")
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// RequestToJoin files a join request for the viewer on a trip
func (g *TripClient) RequestToJoin(ctx context.Context, token, tripID string) error {
	return g.doJSON(ctx, token, http.MethodPost, fmt.Sprintf("/trips/%s/requests", tripID), nil, nil, "request_to_join")
}

// HandleTripRequest accepts or rejects a passenger's join request
func (g *TripClient) HandleTripRequest(ctx context.Context, token, tripID, requestID string, action models.RequestAction) error {
	body := map[string]string{"action": string(action)}
	path := fmt.Sprintf("/trips/%s/requests/%s", tripID, requestID)
	return g.doJSON(ctx, token, http.MethodPut, path, body, nil, "handle_trip_request")
}

// RateAndCompleteAsDriver submits the driver's rating for one passenger
// and marks that passenger's request completed
func (g *TripClient) RateAndCompleteAsDriver(ctx context.Context, token, tripID, passengerID string, rating int) error {
	body := map[string]interface{}{
		"passenger_id": passengerID,
		"rating":       rating,
	}
	path := fmt.Sprintf("/trips/%s/rate-complete", tripID)
	return g.doJSON(ctx, token, http.MethodPost, path, body, nil, "rate_and_complete_as_driver")
}

// RateDriver submits the passenger's rating for the driver
func (g *TripClient) RateDriver(ctx context.Context, token, tripID string, rating int) error {
	body := map[string]interface{}{"rating": rating}
	path := fmt.Sprintf("/trips/%s/rate-driver", tripID)
	return g.doJSON(ctx, token, http.MethodPost, path, body, nil, "rate_driver")
}

// ConfirmPickup persists a pickup attestation without a rating. Only used
// when pickup persistence is enabled in config.
func (g *TripClient) ConfirmPickup(ctx context.Context, token, tripID string, role models.RatingRole) error {
	body := map[string]string{"role": string(role)}
	path := fmt.Sprintf("/trips/%s/confirm-pickup", tripID)
	return g.doJSON(ctx, token, http.MethodPost, path, body, nil, "confirm_pickup")
}

// doJSON issues one JSON request against the trips backend and decodes
// the response envelope into target (which may be nil for void calls).
func (g *TripClient) doJSON(ctx context.Context, token, method, path string, body, target interface{}, operation string) error {
	err := g.do(ctx, token, method, path, body, target)
	observability.ObserveUpstream("trips", operation, err)
	return err
}

func (g *TripClient) do(ctx context.Context, token, method, path string, body, target interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, g.client.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("trips backend unreachable: %w: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := mapStatusError(resp.StatusCode, respBody); err != nil {
		return err
	}

	if target == nil {
		return nil
	}
	if err := utils.ParseJSONResponse(respBody, target); err != nil {
		return fmt.Errorf("failed to parse trips backend response: %w", err)
	}
	return nil
}

// mapStatusError translates upstream status codes into the gateway's
// error taxonomy
func mapStatusError(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return fmt.Errorf("trips backend rejected token: %w", apperrors.ErrSessionExpired)
	case status == http.StatusConflict:
		return fmt.Errorf("trips backend: %w", apperrors.ErrDuplicateRequest)
	case status == http.StatusBadRequest:
		return fmt.Errorf("trips backend rejected request (body: %s): %w", string(body), apperrors.ErrValidation)
	default:
		return fmt.Errorf("trips backend request failed (status: %d, body: %s): %w", status, string(body), apperrors.ErrUpstream)
	}
}
