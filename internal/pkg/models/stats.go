package models

// UserStats are the per-user statistics served by the stats backend
type UserStats struct {
	UserID           string  `json:"user_id"`
	TripsAsDriver    int     `json:"trips_as_driver"`
	TripsAsPassenger int     `json:"trips_as_passenger"`
	TotalTrips       int     `json:"total_trips"`
	TotalPoints      int     `json:"total_points"`
	AverageRating    float64 `json:"average_rating"`
	CO2SavedKg       float64 `json:"co2_saved_kg"`
}

// LeaderboardEntry is one row of the gamification leaderboard. Rank and
// Level are assigned by the gateway, not the backend.
type LeaderboardEntry struct {
	UserID   string `json:"user_id"`
	FullName string `json:"fullname"`
	Points   int    `json:"points"`
	Rank     int    `json:"rank"`
	Level    string `json:"level,omitempty"`
}

// GamificationLevel maps a points threshold to a named level
type GamificationLevel struct {
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
}

// GamificationConfig is the admin-tunable points configuration
type GamificationConfig struct {
	PointsPerTripDriver    int                 `json:"points_per_trip_driver"`
	PointsPerTripPassenger int                 `json:"points_per_trip_passenger"`
	PointsPerRatingGiven   int                 `json:"points_per_rating_given"`
	Levels                 []GamificationLevel `json:"levels"`
}
