package models

// DateFormat is the layout of calendar day keys
const DateFormat = "2006-01-02"

// MonthFormat is the layout of calendar month keys
const MonthFormat = "2006-01"

// DayAggregate summarises every session of one calendar day. It is derived
// from sessions and preferences and never stored.
type DayAggregate struct {
	// Date is the day in DateFormat
	Date string `json:"date"`

	// TotalUnits is the sum of units over the day's sessions
	TotalUnits float64 `json:"total_units"`

	// ColorTag is the calendar colour for the day
	ColorTag ColorTag `json:"color_tag"`

	// Blackout is true if any session that day was a blackout
	Blackout bool `json:"blackout"`

	// SessionCount is the number of sessions that day
	SessionCount int `json:"session_count"`
}
