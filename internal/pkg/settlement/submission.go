package settlement

import (
	"fmt"

	"github.com/ecovoit/ecovoit/internal/pkg/errors"
)

// PassengerRating is one star value a driver gives a passenger. A zero
// value means "not rated".
type PassengerRating struct {
	PassengerID string `json:"passenger_id"`
	Value       int    `json:"value"`
}

// Submission is everything the rating form collects: a pickup
// confirmation flag plus the star values for each counterparty. Which of
// DriverRating and PassengerRatings applies depends on the viewer's role.
type Submission struct {
	PickupConfirmed  bool              `json:"pickup_confirmed"`
	DriverRating     int               `json:"driver_rating,omitempty"`
	PassengerRatings []PassengerRating `json:"passenger_ratings,omitempty"`
}

// CanSubmit is the submission guard: a pickup confirmation alone, a rating
// alone, or both are each enough. All-defaults is not submittable.
func (s Submission) CanSubmit() bool {
	if s.PickupConfirmed || s.DriverRating > 0 {
		return true
	}
	for _, r := range s.PassengerRatings {
		if r.Value > 0 {
			return true
		}
	}
	return false
}

// Validate checks the star values. Zero means unset and is allowed;
// anything else must be within 1..5.
func (s Submission) Validate() error {
	if err := validateRating(s.DriverRating); err != nil {
		return fmt.Errorf("driver rating: %w", err)
	}
	for _, r := range s.PassengerRatings {
		if r.PassengerID == "" {
			return fmt.Errorf("passenger rating without passenger id: %w", errors.ErrValidation)
		}
		if err := validateRating(r.Value); err != nil {
			return fmt.Errorf("rating for passenger %s: %w", r.PassengerID, err)
		}
	}
	return nil
}

func validateRating(value int) error {
	if value < 0 || value > 5 {
		return fmt.Errorf("value %d out of range: %w", value, errors.ErrValidation)
	}
	return nil
}
