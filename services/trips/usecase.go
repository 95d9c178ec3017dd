package trips

import (
	"context"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/pkg/settlement"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ecovoit/ecovoit/services/trips TripUC

// TripUC defines the trip business logic exposed to the HTTP handlers
type TripUC interface {
	CreateTrip(ctx context.Context, token string, req models.CreateTripRequest) (*models.Trip, error)
	SearchTrips(ctx context.Context, token string, query models.TripSearchQuery) ([]models.Trip, error)
	GetMyTrips(ctx context.Context, token, viewerID string) (*MyTripsView, error)
	RequestToJoin(ctx context.Context, token, tripID string) error
	HandleTripRequest(ctx context.Context, token, tripID, requestID string, action models.RequestAction) error

	// Settlement
	GetSettlementState(ctx context.Context, token, tripID, viewerID string) (*settlement.State, error)
	SubmitSettlement(ctx context.Context, token, tripID, viewerID string, sub settlement.Submission) (*models.SettlementResult, error)
}

// TripView is a trip enriched with the viewer's derived settlement state,
// so every screen renders affordances from the same computation
type TripView struct {
	models.Trip
	Settlement settlement.State `json:"settlement"`
}

// MyTripsView is the my-trips partition with settlement states attached
type MyTripsView struct {
	CurrentTrips  []TripView `json:"currentTrips"`
	HistoricTrips []TripView `json:"historicTrips"`
}
