package domain

import "time"

// DayReport records the state of the shop after a simulated day has passed
type DayReport struct {
	Day         int              `json:"day"`
	TickID      string           `json:"tick_id"`
	CompletedAt time.Time        `json:"completed_at"`
	Categories  map[Category]int `json:"categories"`
	Items       []Item           `json:"items"`
}
