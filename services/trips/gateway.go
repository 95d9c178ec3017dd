package trips

import (
	"context"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ecovoit/ecovoit/services/trips TripGW

// TripGW defines the gateway operations against the trips backend. Every
// call carries the viewer's upstream auth token and is bounded by the
// client timeout; none of them retry.
type TripGW interface {
	CreateTrip(ctx context.Context, token string, req models.CreateTripRequest) (*models.Trip, error)
	SearchTrips(ctx context.Context, token string, query models.TripSearchQuery) ([]models.Trip, error)
	GetMyTrips(ctx context.Context, token string) (*models.MyTrips, error)
	GetTrip(ctx context.Context, token, tripID string) (*models.Trip, error)
	RequestToJoin(ctx context.Context, token, tripID string) error
	HandleTripRequest(ctx context.Context, token, tripID, requestID string, action models.RequestAction) error
	RateAndCompleteAsDriver(ctx context.Context, token, tripID, passengerID string, rating int) error
	RateDriver(ctx context.Context, token, tripID string, rating int) error
	ConfirmPickup(ctx context.Context, token, tripID string, role models.RatingRole) error
}
