package models

// SettlementOutcomeStatus is the per-counterparty result of a settlement
// submission
type SettlementOutcomeStatus string

const (
	SettlementSubmitted SettlementOutcomeStatus = "submitted"
	SettlementSkipped   SettlementOutcomeStatus = "skipped"
	SettlementFailed    SettlementOutcomeStatus = "failed"
)

// SettlementItemOutcome records what happened to a single rating in a
// settlement batch
type SettlementItemOutcome struct {
	CounterpartyID string                  `json:"counterparty_id"`
	Value          int                     `json:"value"`
	Status         SettlementOutcomeStatus `json:"status"`
	Error          string                  `json:"error,omitempty"`
}

// SettlementResult is the full report of a settlement submission. Ratings
// are issued strictly in list order; a failure never rolls back earlier
// successes, so FailedCount tells the caller exactly what still needs a
// retry.
type SettlementResult struct {
	TripID           string                  `json:"trip_id"`
	Role             RatingRole              `json:"role"`
	Items            []SettlementItemOutcome `json:"items"`
	PickupConfirmed  bool                    `json:"pickup_confirmed"`
	PickupPersisted  bool                    `json:"pickup_persisted"`
	PickupError      string                  `json:"pickup_error,omitempty"`
	SubmittedCount   int                     `json:"submitted_count"`
	FailedCount      int                     `json:"failed_count"`
}
