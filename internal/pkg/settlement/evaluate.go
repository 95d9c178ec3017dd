// Package settlement holds the trip settlement core: the pure evaluator
// that decides, per trip and per viewer, whether a rating action is
// pending, and the submission value with its guard. It has no side
// effects and no knowledge of HTTP.
package settlement

import (
	"time"

	"github.com/ecovoit/ecovoit/internal/pkg/models"
)

// Kind tags the settlement state of a trip as seen by one viewer
type Kind string

const (
	// KindNone: no action applies. The trip is not over yet, the viewer
	// has no accepted relationship to it, or a driver has nobody to rate.
	KindNone Kind = "none"

	// KindAwaitingDriverRating: the viewer is the driver and still owes
	// a pickup confirmation and/or passenger ratings.
	KindAwaitingDriverRating Kind = "awaiting_driver_rating"

	// KindAwaitingPassengerRating: the viewer is an accepted passenger
	// and still owes a pickup confirmation and/or a driver rating.
	KindAwaitingPassengerRating Kind = "awaiting_passenger_rating"

	// KindSettled: the viewer has both confirmed pickup and rated; no
	// further action is needed.
	KindSettled Kind = "settled"
)

// State is the evaluator's tagged result, consumed uniformly by every
// presentation surface
type State struct {
	Kind Kind `json:"kind"`

	// Role is set whenever the viewer has an accepted relationship to
	// the trip, including the settled case.
	Role models.RatingRole `json:"role,omitempty"`

	HasConfirmedPickup bool `json:"has_confirmed_pickup"`
	HasGivenRating     bool `json:"has_given_rating"`

	// Counterparties lists who the viewer may still rate: the accepted
	// passengers a driver has not rated yet, or the driver for a
	// passenger. Empty once settled.
	Counterparties []string `json:"counterparties,omitempty"`
}

// ActionPending reports whether the viewer still owes a settlement action
func (s State) ActionPending() bool {
	return s.Kind == KindAwaitingDriverRating || s.Kind == KindAwaitingPassengerRating
}

// Evaluate derives the settlement state of a trip for one viewer at a
// given instant. The rating window only opens once the trip's scheduled
// arrival has passed or the backend marked it completed.
func Evaluate(trip *models.Trip, viewerID string, now time.Time) State {
	if trip == nil || !isPast(trip, now) {
		return State{Kind: KindNone}
	}

	if trip.DriverID == viewerID {
		return evaluateDriver(trip, viewerID)
	}

	req := trip.RequestBy(viewerID)
	if req == nil || req.Status != models.RequestStatusAccepted {
		return State{Kind: KindNone}
	}
	return evaluatePassenger(trip, viewerID)
}

// NeedsRating is the boolean projection of Evaluate kept for callers that
// only render a badge
func NeedsRating(trip *models.Trip, viewerID string, now time.Time) bool {
	return Evaluate(trip, viewerID, now).ActionPending()
}

func isPast(trip *models.Trip, now time.Time) bool {
	if trip.Status == models.TripStatusCompleted {
		return true
	}
	arrival, err := trip.ArrivalAt()
	if err != nil {
		// Unparseable schedule: without a completed status the rating
		// window stays closed.
		return false
	}
	return arrival.Before(now)
}

func evaluateDriver(trip *models.Trip, viewerID string) State {
	accepted := trip.AcceptedRequests()
	if len(accepted) == 0 {
		// Nobody to rate, so no pending state even past arrival.
		return State{Kind: KindNone}
	}

	state := State{
		Role:               models.RatingRoleDriver,
		HasConfirmedPickup: trip.HasConfirmed(viewerID, models.RatingRoleDriver),
		HasGivenRating:     trip.HasRated(viewerID, models.RatingRoleDriver),
	}
	if state.HasConfirmedPickup && state.HasGivenRating {
		state.Kind = KindSettled
		return state
	}

	state.Kind = KindAwaitingDriverRating
	for _, r := range accepted {
		if !trip.HasRatedUser(viewerID, models.RatingRoleDriver, r.RequesterID) {
			state.Counterparties = append(state.Counterparties, r.RequesterID)
		}
	}
	return state
}

func evaluatePassenger(trip *models.Trip, viewerID string) State {
	state := State{
		Role:               models.RatingRolePassenger,
		HasConfirmedPickup: trip.HasConfirmed(viewerID, models.RatingRolePassenger),
		HasGivenRating:     trip.HasRated(viewerID, models.RatingRolePassenger),
	}
	if state.HasConfirmedPickup && state.HasGivenRating {
		state.Kind = KindSettled
		return state
	}

	state.Kind = KindAwaitingPassengerRating
	if !trip.HasRatedUser(viewerID, models.RatingRolePassenger, trip.DriverID) {
		state.Counterparties = []string{trip.DriverID}
	}
	return state
}
