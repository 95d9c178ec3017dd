package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ecovoit/ecovoit/internal/pkg/errors"
	"github.com/ecovoit/ecovoit/internal/pkg/models"
	"github.com/ecovoit/ecovoit/internal/pkg/settlement"
	"github.com/ecovoit/ecovoit/services/trips/mocks"
)

const (
	testToken    = "upstream-token"
	driverID     = "driver-1"
	passengerID  = "passenger-1"
	passenger2ID = "passenger-2"
	passenger3ID = "passenger-3"
)

// fixedNow is one hour past the test trip's arrival.
var fixedNow = time.Date(2025, 4, 1, 11, 0, 0, 0, time.UTC)

func newTestUC(gw *mocks.MockTripGW, persistPickup bool) *tripUC {
	cfg := &models.Config{}
	cfg.Trips.PersistPickupConfirmation = persistPickup
	return &tripUC{
		cfg:    cfg,
		tripGW: gw,
		now:    func() time.Time { return fixedNow },
	}
}

func endedTrip(passengerIDs ...string) *models.Trip {
	trip := &models.Trip{
		ID:          "trip-1",
		DriverID:    driverID,
		Date:        "2025-04-01",
		Time:        "09:00",
		ArrivalTime: "10:00",
		Status:      models.TripStatusActive,
	}
	for i, id := range passengerIDs {
		trip.Requests = append(trip.Requests, models.JoinRequest{
			ID:          fmt.Sprintf("req-%d", i+1),
			RequesterID: id,
			Status:      models.RequestStatusAccepted,
		})
	}
	return trip
}

func TestSubmitSettlement_GuardRejectsEmptySubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUC(mocks.NewMockTripGW(ctrl), false)

	_, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", driverID, settlement.Submission{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSubmitSettlement_RejectsOutOfRangeRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUC(mocks.NewMockTripGW(ctrl), false)

	sub := settlement.Submission{DriverRating: 6}
	_, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", passengerID, sub)
	assert.True(t, apperrors.IsValidation(err))
}

func TestSubmitSettlement_DriverBatchInListOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)

	trip := endedTrip(passengerID, passenger2ID)
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)

	// Calls must be issued sequentially, in list order.
	gomock.InOrder(
		mockGW.EXPECT().RateAndCompleteAsDriver(gomock.Any(), testToken, "trip-1", passengerID, 4).Return(nil),
		mockGW.EXPECT().RateAndCompleteAsDriver(gomock.Any(), testToken, "trip-1", passenger2ID, 5).Return(nil),
	)

	sub := settlement.Submission{PassengerRatings: []settlement.PassengerRating{
		{PassengerID: passengerID, Value: 4},
		{PassengerID: passenger2ID, Value: 5},
	}}

	result, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", driverID, sub)
	require.NoError(t, err)
	assert.Equal(t, models.RatingRoleDriver, result.Role)
	assert.Equal(t, 2, result.SubmittedCount)
	assert.Equal(t, 0, result.FailedCount)
	require.Len(t, result.Items, 2)
	assert.Equal(t, models.SettlementSubmitted, result.Items[0].Status)
	assert.Equal(t, models.SettlementSubmitted, result.Items[1].Status)
}

func TestSubmitSettlement_DriverPartialFailureContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)

	trip := endedTrip(passengerID, passenger2ID, passenger3ID)
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)

	gomock.InOrder(
		mockGW.EXPECT().RateAndCompleteAsDriver(gomock.Any(), testToken, "trip-1", passengerID, 4).Return(nil),
		mockGW.EXPECT().RateAndCompleteAsDriver(gomock.Any(), testToken, "trip-1", passenger2ID, 3).
			Return(errors.New("backend unavailable")),
		// The saga keeps going after a failure.
		mockGW.EXPECT().RateAndCompleteAsDriver(gomock.Any(), testToken, "trip-1", passenger3ID, 5).Return(nil),
	)

	sub := settlement.Submission{PassengerRatings: []settlement.PassengerRating{
		{PassengerID: passengerID, Value: 4},
		{PassengerID: passenger2ID, Value: 3},
		{PassengerID: passenger3ID, Value: 5},
	}}

	result, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", driverID, sub)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SubmittedCount)
	assert.Equal(t, 1, result.FailedCount)
	require.Len(t, result.Items, 3)
	assert.Equal(t, models.SettlementSubmitted, result.Items[0].Status)
	assert.Equal(t, models.SettlementFailed, result.Items[1].Status)
	assert.Equal(t, passenger2ID, result.Items[1].CounterpartyID)
	assert.Contains(t, result.Items[1].Error, "backend unavailable")
	assert.Equal(t, models.SettlementSubmitted, result.Items[2].Status)
}

func TestSubmitSettlement_DriverSkipsAlreadyRatedPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)

	trip := endedTrip(passengerID, passenger2ID)
	trip.Ratings = []models.Rating{
		{FromUserID: driverID, Role: models.RatingRoleDriver, ToUserID: passengerID, Value: 4},
	}
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)
	// Only the unrated passenger gets a call.
	mockGW.EXPECT().RateAndCompleteAsDriver(gomock.Any(), testToken, "trip-1", passenger2ID, 5).Return(nil)

	sub := settlement.Submission{PassengerRatings: []settlement.PassengerRating{
		{PassengerID: passengerID, Value: 4},
		{PassengerID: passenger2ID, Value: 5},
	}}

	result, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", driverID, sub)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SubmittedCount)
	require.Len(t, result.Items, 2)
	assert.Equal(t, models.SettlementSkipped, result.Items[0].Status)
	assert.Equal(t, models.SettlementSubmitted, result.Items[1].Status)
}

func TestSubmitSettlement_DriverRejectsUnacceptedPassenger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)

	trip := endedTrip(passengerID)
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)
	mockGW.EXPECT().RateAndCompleteAsDriver(gomock.Any(), testToken, "trip-1", passengerID, 4).Return(nil)

	sub := settlement.Submission{PassengerRatings: []settlement.PassengerRating{
		{PassengerID: "someone-else", Value: 5},
		{PassengerID: passengerID, Value: 4},
	}}

	result, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", driverID, sub)
	require.NoError(t, err)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, models.SettlementFailed, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Error, "not an accepted passenger")
}

func TestSubmitSettlement_SessionExpiredAbortsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)

	trip := endedTrip(passengerID, passenger2ID)
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)
	mockGW.EXPECT().RateAndCompleteAsDriver(gomock.Any(), testToken, "trip-1", passengerID, 4).
		Return(fmt.Errorf("rejected: %w", apperrors.ErrSessionExpired))
	// No further calls once the token is known dead.

	sub := settlement.Submission{PassengerRatings: []settlement.PassengerRating{
		{PassengerID: passengerID, Value: 4},
		{PassengerID: passenger2ID, Value: 5},
	}}

	_, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", driverID, sub)
	assert.True(t, apperrors.IsSessionExpired(err))
}

func TestSubmitSettlement_PassengerRatesDriverOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)

	trip := endedTrip(passengerID)
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)
	mockGW.EXPECT().RateDriver(gomock.Any(), testToken, "trip-1", 5).Return(nil)

	sub := settlement.Submission{DriverRating: 5}
	result, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", passengerID, sub)
	require.NoError(t, err)
	assert.Equal(t, models.RatingRolePassenger, result.Role)
	require.Len(t, result.Items, 1)
	assert.Equal(t, driverID, result.Items[0].CounterpartyID)
	assert.Equal(t, models.SettlementSubmitted, result.Items[0].Status)
}

func TestSubmitSettlement_PassengerSkipsResubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)

	trip := endedTrip(passengerID)
	trip.Ratings = []models.Rating{
		{FromUserID: passengerID, Role: models.RatingRolePassenger, ToUserID: driverID, Value: 4},
	}
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)
	// No RateDriver call: the pair is already rated in this trip.

	sub := settlement.Submission{DriverRating: 4}
	result, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", passengerID, sub)
	require.NoError(t, err)
	assert.Equal(t, models.SettlementSkipped, result.Items[0].Status)
	assert.Equal(t, 0, result.SubmittedCount)
}

func TestSubmitSettlement_PickupOnlyLocalAttestation(t *testing.T) {
	// Default behavior: a pickup-only submission passes the guard but no
	// upstream call is made; the confirmation is a local attestation.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)

	trip := endedTrip(passengerID)
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)

	sub := settlement.Submission{PickupConfirmed: true}
	result, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", passengerID, sub)
	require.NoError(t, err)
	assert.True(t, result.PickupConfirmed)
	assert.False(t, result.PickupPersisted)
	assert.Empty(t, result.Items)
}

func TestSubmitSettlement_PickupOnlyPersistedWhenEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, true)

	trip := endedTrip(passengerID)
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)
	mockGW.EXPECT().ConfirmPickup(gomock.Any(), testToken, "trip-1", models.RatingRolePassenger).Return(nil)

	sub := settlement.Submission{PickupConfirmed: true}
	result, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", passengerID, sub)
	require.NoError(t, err)
	assert.True(t, result.PickupPersisted)
}

func TestSubmitSettlement_BeforeArrivalRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)
	uc.now = func() time.Time { return time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC) }

	trip := endedTrip(passengerID)
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)

	sub := settlement.Submission{DriverRating: 5}
	_, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", passengerID, sub)
	assert.ErrorIs(t, err, apperrors.ErrTripNotEnded)
}

func TestSubmitSettlement_StrangerRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockTripGW(ctrl)
	uc := newTestUC(mockGW, false)

	trip := endedTrip(passengerID)
	mockGW.EXPECT().GetTrip(gomock.Any(), testToken, "trip-1").Return(trip, nil)

	sub := settlement.Submission{DriverRating: 5}
	_, err := uc.SubmitSettlement(context.Background(), testToken, "trip-1", "stranger-1", sub)
	assert.ErrorIs(t, err, apperrors.ErrNotParticipant)
}
