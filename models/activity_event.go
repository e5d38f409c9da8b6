package models

import "time"

// Activity event kinds as recorded in user_activity.csv.
const (
	EventConsumed  = "consumed"
	EventSkipped   = "skipped"
	EventWorkedOut = "worked_out"
)

type ActivityEvent struct {
	UserID      string    `json:"user_id"`
	TS          time.Time `json:"ts"`
	Event       string    `json:"event"`
	FoodID      string    `json:"food_id,omitempty"`
	DurationMin int       `json:"duration_min,omitempty"`
}
