package models

import (
	"time"
)

// TripStatus represents the server-assigned lifecycle status of a trip
type TripStatus string

const (
	TripStatusPending   TripStatus = "pending"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// RequestStatus represents the status of a passenger's join request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// RatingRole identifies which side of the trip a confirmation or rating
// was given from
type RatingRole string

const (
	RatingRoleDriver    RatingRole = "driver"
	RatingRolePassenger RatingRole = "passenger"
)

// RequestAction is a driver's decision on a join request
type RequestAction string

const (
	RequestActionAccept RequestAction = "accept"
	RequestActionReject RequestAction = "reject"
)

// JoinRequest represents a passenger's application to join a trip
type JoinRequest struct {
	ID            string        `json:"id"`
	RequesterID   string        `json:"requester_id"`
	RequesterName string        `json:"requester_name,omitempty"`
	Status        RequestStatus `json:"status"`
	IsCompleted   bool          `json:"is_completed"`
	Rating        *int          `json:"rating,omitempty"`
}

// Confirmation is one party's attestation that physical pickup occurred
type Confirmation struct {
	UserID      string     `json:"user_id"`
	Role        RatingRole `json:"role"`
	IsConfirmed bool       `json:"is_confirmed"`
}

// Rating is a 1-5 score one party gave another after a trip. The trips
// backend guarantees at most one entry per (from_user_id, role) pair.
type Rating struct {
	FromUserID string     `json:"from_user_id"`
	Role       RatingRole `json:"role"`
	ToUserID   string     `json:"to_user_id"`
	Value      int        `json:"value"`
}

// Trip represents a single driver-offered carpool instance as returned by
// the trips backend. Date is "2006-01-02", Time and ArrivalTime are "15:04".
type Trip struct {
	ID             string         `json:"id"`
	DriverID       string         `json:"driver_id"`
	DriverName     string         `json:"driver_name,omitempty"`
	Departure      string         `json:"departure"`
	Arrival        string         `json:"arrival"`
	Date           string         `json:"date"`
	Time           string         `json:"time"`
	ArrivalTime    string         `json:"arrival_time"`
	AvailableSeats int            `json:"available_seats"`
	PricePerSeat   float64        `json:"price_per_seat,omitempty"`
	DistanceKm     float64        `json:"distance_km,omitempty"`
	Status         TripStatus     `json:"status"`
	Requests       []JoinRequest  `json:"requests,omitempty"`
	Confirmations  []Confirmation `json:"confirmations,omitempty"`
	Ratings        []Rating       `json:"ratings,omitempty"`
}

// Layouts used for the trips backend's date and clock fields
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ArrivalAt combines Date and ArrivalTime into a single timestamp
func (t *Trip) ArrivalAt() (time.Time, error) {
	return time.Parse(DateLayout+" "+ClockLayout, t.Date+" "+t.ArrivalTime)
}

// DepartureAt combines Date and Time into a single timestamp
func (t *Trip) DepartureAt() (time.Time, error) {
	return time.Parse(DateLayout+" "+ClockLayout, t.Date+" "+t.Time)
}

// AcceptedRequests returns the join requests the driver accepted, in the
// order the backend returned them
func (t *Trip) AcceptedRequests() []JoinRequest {
	var accepted []JoinRequest
	for _, r := range t.Requests {
		if r.Status == RequestStatusAccepted {
			accepted = append(accepted, r)
		}
	}
	return accepted
}

// RequestBy returns the viewer's own join request, if any
func (t *Trip) RequestBy(userID string) *JoinRequest {
	for i := range t.Requests {
		if t.Requests[i].RequesterID == userID {
			return &t.Requests[i]
		}
	}
	return nil
}

// HasConfirmed reports whether the user attested pickup in the given role
func (t *Trip) HasConfirmed(userID string, role RatingRole) bool {
	for _, c := range t.Confirmations {
		if c.UserID == userID && c.Role == role && c.IsConfirmed {
			return true
		}
	}
	return false
}

// HasRated reports whether the user already submitted a rating in the
// given role
func (t *Trip) HasRated(userID string, role RatingRole) bool {
	for _, r := range t.Ratings {
		if r.FromUserID == userID && r.Role == role {
			return true
		}
	}
	return false
}

// HasRatedUser reports whether the user already rated a specific
// counterparty in the given role
func (t *Trip) HasRatedUser(userID string, role RatingRole, toUserID string) bool {
	for _, r := range t.Ratings {
		if r.FromUserID == userID && r.Role == role && r.ToUserID == toUserID {
			return true
		}
	}
	return false
}

// MyTrips is the trips backend's partition of a user's trips
type MyTrips struct {
	CurrentTrips  []Trip `json:"currentTrips"`
	HistoricTrips []Trip `json:"historicTrips"`
}

// TripSearchQuery are the search criteria for public trips
type TripSearchQuery struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
}

// CreateTripRequest is the payload for offering a new trip. ArrivalTime is
// derived by the gateway from Time plus DurationMinutes.
type CreateTripRequest struct {
	Departure       string  `json:"departure"`
	Arrival         string  `json:"arrival"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	AvailableSeats  int     `json:"available_seats"`
	PricePerSeat    float64 `json:"price_per_seat,omitempty"`
	DistanceKm      float64 `json:"distance_km,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	ArrivalTime     string  `json:"arrival_time,omitempty"`
}
