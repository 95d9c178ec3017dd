package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/logger"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/pkg/observability"
	"github.com/ecovoit/ecovoit/internal/pkg/settlement"
)

// SubmitSettlement runs the settlement saga for one viewer on one trip.
// Ratings are issued strictly in list order and are never parallelized,
// so a failure always names the counterparty whose rating did not
// persist. Earlier successes are not rolled back; instead every item's
// outcome is reported so the caller can retry exactly what failed.
func (uc *tripUC) SubmitSettlement(ctx context.Context, token, tripID, viewerID string, sub settlement.Submission) (*models.SettlementResult, error) {
	if !sub.CanSubmit() {
		return nil, fmt.Errorf("nothing to submit: confirm pickup or give at least one rating: %w", apperrors.ErrValidation)
	}
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	trip, err := uc.tripGW.GetTrip(ctx, token, tripID)
	if err != nil {
		return nil, err
	}

	state := settlement.Evaluate(trip, viewerID, uc.now())
	if state.Kind == settlement.KindNone {
		if trip.DriverID != viewerID && trip.RequestBy(viewerID) == nil {
			return nil, apperrors.ErrNotParticipant
		}
		return nil, apperrors.ErrTripNotEnded
	}

	var result *models.SettlementResult
	switch state.Role {
	case models.RatingRoleDriver:
		result, err = uc.settleAsDriver(ctx, token, trip, sub)
	case models.RatingRolePassenger:
		result, err = uc.settleAsPassenger(ctx, token, trip, viewerID, sub)
	default:
		return nil, apperrors.ErrNotParticipant
	}
	if err != nil {
		observability.SettlementSubmissionsTotal.WithLabelValues(string(state.Role), "error").Inc()
		return nil, err
	}

	if sub.PickupConfirmed {
		uc.persistPickup(ctx, token, trip, viewerID, state.Role, result)
	}

	outcome := "complete"
	if result.FailedCount > 0 {
		outcome = "partial"
	}
	observability.SettlementSubmissionsTotal.WithLabelValues(string(state.Role), outcome).Inc()

	logger.Info("settlement submitted", logrus.Fields{
		"trip_id":   tripID,
		"role":      string(state.Role),
		"submitted": result.SubmittedCount,
		"failed":    result.FailedCount,
	})
	return result, nil
}

// settleAsDriver issues one rate-and-complete call per rated passenger,
// in list order. A SessionExpired aborts the batch: the token is dead and
// every further call would fail the same way.
func (uc *tripUC) settleAsDriver(ctx context.Context, token string, trip *models.Trip, sub settlement.Submission) (*models.SettlementResult, error) {
	accepted := make(map[string]bool)
	for _, r := range trip.AcceptedRequests() {
		accepted[r.RequesterID] = true
	}

	result := &models.SettlementResult{
		TripID:          trip.ID,
		Role:            models.RatingRoleDriver,
		PickupConfirmed: sub.PickupConfirmed,
	}

	for _, pr := range sub.PassengerRatings {
		if pr.Value == 0 {
			continue
		}

		item := models.SettlementItemOutcome{CounterpartyID: pr.PassengerID, Value: pr.Value}
		switch {
		case !accepted[pr.PassengerID]:
			item.Status = models.SettlementFailed
			item.Error = "not an accepted passenger of this trip"
			result.FailedCount++
		case trip.HasRatedUser(trip.DriverID, models.RatingRoleDriver, pr.PassengerID):
			// Already rated this pair; resubmitting would duplicate.
			item.Status = models.SettlementSkipped
		default:
			err := uc.tripGW.RateAndCompleteAsDriver(ctx, token, trip.ID, pr.PassengerID, pr.Value)
			if apperrors.IsSessionExpired(err) {
				return nil, err
			}
			if err != nil {
				item.Status = models.SettlementFailed
				item.Error = err.Error()
				result.FailedCount++
				logger.Error("passenger rating failed", logrus.Fields{
					"trip_id":      trip.ID,
					"passenger_id": pr.PassengerID,
					"error":        err.Error(),
				})
			} else {
				item.Status = models.SettlementSubmitted
				result.SubmittedCount++
			}
		}
		result.Items = append(result.Items, item)
	}

	return result, nil
}

// settleAsPassenger issues at most one rate-driver call
func (uc *tripUC) settleAsPassenger(ctx context.Context, token string, trip *models.Trip, viewerID string, sub settlement.Submission) (*models.SettlementResult, error) {
	result := &models.SettlementResult{
		TripID:          trip.ID,
		Role:            models.RatingRolePassenger,
		PickupConfirmed: sub.PickupConfirmed,
	}

	if sub.DriverRating == 0 {
		return result, nil
	}

	item := models.SettlementItemOutcome{CounterpartyID: trip.DriverID, Value: sub.DriverRating}
	if trip.HasRatedUser(viewerID, models.RatingRolePassenger, trip.DriverID) {
		item.Status = models.SettlementSkipped
	} else {
		err := uc.tripGW.RateDriver(ctx, token, trip.ID, sub.DriverRating)
		if apperrors.IsSessionExpired(err) {
			return nil, err
		}
		if err != nil {
			item.Status = models.SettlementFailed
			item.Error = err.Error()
			result.FailedCount++
		} else {
			item.Status = models.SettlementSubmitted
			result.SubmittedCount++
		}
	}
	result.Items = append(result.Items, item)

	return result, nil
}

// persistPickup sends the pickup attestation upstream when that behavior
// is enabled; otherwise the confirmation stays a local attestation
// reported in the result only.
func (uc *tripUC) persistPickup(ctx context.Context, token string, trip *models.Trip, viewerID string, role models.RatingRole, result *models.SettlementResult) {
	if !uc.cfg.Trips.PersistPickupConfirmation {
		return
	}
	if trip.HasConfirmed(viewerID, role) {
		result.PickupPersisted = true
		return
	}

	if err := uc.tripGW.ConfirmPickup(ctx, token, trip.ID, role); err != nil {
		result.PickupError = err.Error()
		logger.Error("pickup confirmation failed", logrus.Fields{
			"trip_id": trip.ID,
			"role":    string(role),
			"error":   err.Error(),
		})
		return
	}
	result.PickupPersisted = true
}
