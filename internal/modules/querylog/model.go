// README: Query-log record and stats types.
package querylog

import "time"

// Record is one handled assistant query.
type Record struct {
	Query        string
	Location     string
	WantsWeather bool
	WantsPlaces  bool
	Duration     time.Duration
	CreatedAt    time.Time
}

// Stats holds the per-day intent counters kept in Redis.
type Stats struct {
	Day     string `json:"day"`
	Weather int64  `json:"weather"`
	Places  int64  `json:"places"`
}

// counterTTL bounds how long a day's counters live after their last bump.
const counterTTL = 48 * time.Hour
