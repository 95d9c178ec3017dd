package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/logger"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/pkg/settlement"
	"github.com/ecovoit/ecovoit/services/trips"
)

// tripUC implements the trips.TripUC interface
type tripUC struct {
	cfg    *models.Config
	tripGW trips.TripGW
	now    func() time.Time
}

// NewTripUC creates a new trip use case
func NewTripUC(cfg *models.Config, tripGW trips.TripGW) trips.TripUC {
	return &tripUC{
		cfg:    cfg,
		tripGW: tripGW,
		now:    time.Now,
	}
}

// CreateTrip validates a new trip offer, derives its arrival time from
// the route duration, and forwards it to the trips backend
func (uc *tripUC) CreateTrip(ctx context.Context, token string, req models.CreateTripRequest) (*models.Trip, error) {
	if req.Departure == "" || req.Arrival == "" {
		return nil, fmt.Errorf("departure and arrival are required: %w", apperrors.ErrValidation)
	}
	if req.AvailableSeats < 1 {
		return nil, fmt.Errorf("at least one seat must be offered: %w", apperrors.ErrValidation)
	}
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("route duration is required: %w", apperrors.ErrValidation)
	}

	departureAt, err := time.Parse(models.DateLayout+" "+models.ClockLayout, req.Date+" "+req.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid date or time: %w", apperrors.ErrValidation)
	}

	// Arrival is derived at creation, never supplied by the caller.
	arrivalAt := departureAt.Add(time.Duration(req.DurationMinutes) * time.Minute)
	req.ArrivalTime = arrivalAt.Format(models.ClockLayout)

	trip, err := uc.tripGW.CreateTrip(ctx, token, req)
	if err != nil {
		return nil, err
	}

	logger.Info("trip created", logrus.Fields{
		"trip_id":   trip.ID,
		"departure": trip.Departure,
		"arrival":   trip.Arrival,
		"date":      trip.Date,
	})
	return trip, nil
}

// SearchTrips queries public trips matching the criteria
func (uc *tripUC) SearchTrips(ctx context.Context, token string, query models.TripSearchQuery) ([]models.Trip, error) {
	if query.Departure == "" || query.Arrival == "" || query.Date == "" {
		return nil, fmt.Errorf("departure, arrival and date are required: %w", apperrors.ErrValidation)
	}
	return uc.tripGW.SearchTrips(ctx, token, query)
}

// GetMyTrips fetches the viewer's trips and attaches the derived
// settlement state to each one
func (uc *tripUC) GetMyTrips(ctx context.Context, token, viewerID string) (*trips.MyTripsView, error) {
	myTrips, err := uc.tripGW.GetMyTrips(ctx, token)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	return &trips.MyTripsView{
		CurrentTrips:  uc.buildViews(myTrips.CurrentTrips, viewerID, now),
		HistoricTrips: uc.buildViews(myTrips.HistoricTrips, viewerID, now),
	}, nil
}

func (uc *tripUC) buildViews(list []models.Trip, viewerID string, now time.Time) []trips.TripView {
	views := make([]trips.TripView, 0, len(list))
	for _, trip := range list {
		views = append(views, trips.TripView{
			Trip:       trip,
			Settlement: settlement.Evaluate(&trip, viewerID, now),
		})
	}
	return views
}

// RequestToJoin files a join request for the viewer
func (uc *tripUC) RequestToJoin(ctx context.Context, token, tripID string) error {
	if tripID == "" {
		return fmt.Errorf("trip id is required: %w", apperrors.ErrValidation)
	}
	return uc.tripGW.RequestToJoin(ctx, token, tripID)
}

// HandleTripRequest forwards the driver's accept/reject decision
func (uc *tripUC) HandleTripRequest(ctx context.Context, token, tripID, requestID string, action models.RequestAction) error {
	if action != models.RequestActionAccept && action != models.RequestActionReject {
		return fmt.Errorf("action must be accept or reject: %w", apperrors.ErrValidation)
	}
	return uc.tripGW.HandleTripRequest(ctx, token, tripID, requestID, action)
}

// GetSettlementState evaluates the viewer's settlement state for a trip
func (uc *tripUC) GetSettlementState(ctx context.Context, token, tripID, viewerID string) (*settlement.State, error) {
	trip, err := uc.tripGW.GetTrip(ctx, token, tripID)
	if err != nil {
		return nil, err
	}

	state := settlement.Evaluate(trip, viewerID, uc.now())
	return &state, nil
}
