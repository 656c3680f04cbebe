package types

import (
	"time"
)

// Reading is a single soil moisture observation reported by a pot sensor.
// The id and timestamp are assigned by the store at insert time.
type Reading struct {
	ID              int64     `json:"id"`
	PotID           string    `json:"pot_id"`
	Location        *string   `json:"location"`
	RawValue        float64   `json:"raw_value"`
	MoisturePercent float64   `json:"moisture_percent"`
	Timestamp       time.Time `json:"timestamp"`
}

// IncomingReading is the payload shape accepted on ingest. Required fields
// are pointers so that an absent field can be told apart from a zero value.
type IncomingReading struct {
	PotID           *string  `json:"pot_id"`
	Location        *string  `json:"location"`
	RawValue        *float64 `json:"raw_value"`
	MoisturePercent *float64 `json:"moisture_percent"`
}

// PotSummary describes one (pot_id, location) pair derived from the stored
// readings. A pot that has reported under more than one location yields one
// summary per location.
type PotSummary struct {
	PotID        string    `json:"pot_id"`
	Location     *string   `json:"location"`
	ReadingCount int64     `json:"reading_count"`
	LastReading  time.Time `json:"last_reading"`
}
