package models

import (
	"time"
	// Sessions carry arbitrary IANA zones, so the zone database is embedded
	// rather than trusted to exist on the host.
	_ "time/tzdata"
)

// SessionType describes how a drinking session was recorded
type SessionType string

const (
	// SessionTypeLive is a session tracked while it was happening
	SessionTypeLive SessionType = "live"

	// SessionTypeEdit is a session entered or edited after the fact
	SessionTypeEdit SessionType = "edit"
)

// DrinkKey identifies a kind of drink
type DrinkKey string

const (
	DrinkSmallBeer  DrinkKey = "small_beer"
	DrinkBeer       DrinkKey = "beer"
	DrinkWine       DrinkKey = "wine"
	DrinkWeakShot   DrinkKey = "weak_shot"
	DrinkStrongShot DrinkKey = "strong_shot"
	DrinkCocktail   DrinkKey = "cocktail"
	DrinkOther      DrinkKey = "other"
)

// DrinkKeys lists every known drink in display order
var DrinkKeys = []DrinkKey{
	DrinkSmallBeer,
	DrinkBeer,
	DrinkWine,
	DrinkWeakShot,
	DrinkStrongShot,
	DrinkCocktail,
	DrinkOther,
}

// IsValid reports whether the key is one of the known drinks
func (k DrinkKey) IsValid() bool {
	for _, known := range DrinkKeys {
		if k == known {
			return true
		}
	}
	return false
}

// Drinks maps a drink to how many of it were had
type Drinks map[DrinkKey]int

// Count returns the total number of drinks regardless of kind
func (d Drinks) Count() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

// Clone returns an independent copy of the drinks
func (d Drinks) Clone() Drinks {
	if d == nil {
		return nil
	}
	out := make(Drinks, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// DrinkingSession is a single recorded drinking event owned by one user
type DrinkingSession struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// UserID is the owner of the session
	UserID string `json:"user_id"`

	// StartTime is when the session started
	StartTime time.Time `json:"start_time"`

	// EndTime is when the session ended, nil while ongoing
	EndTime *time.Time `json:"end_time,omitempty"`

	// Timezone is the IANA zone the session was recorded in
	Timezone string `json:"timezone"`

	// Drinks holds the drink counts for the session
	Drinks Drinks `json:"drinks"`

	// Ongoing is true while a live session is running
	Ongoing bool `json:"ongoing"`

	// Blackout marks a session the user does not remember
	Blackout bool `json:"blackout"`

	// Note is free text attached by the user
	Note string `json:"note,omitempty"`

	// Type says whether the session was tracked live or edited
	Type SessionType `json:"type"`
}

// Location resolves the session's timezone, falling back to UTC
func (s *DrinkingSession) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LocalStart returns the start time in the session's own timezone
func (s *DrinkingSession) LocalStart() time.Time {
	return s.StartTime.In(s.Location())
}

// Clone returns a deep copy of the session
func (s *DrinkingSession) Clone() *DrinkingSession {
	if s == nil {
		return nil
	}
	out := *s
	out.Drinks = s.Drinks.Clone()
	if s.EndTime != nil {
		end := *s.EndTime
		out.EndTime = &end
	}
	return &out
}

// SessionChangeType tells what happened to a session
type SessionChangeType string

const (
	SessionChangeSaved   SessionChangeType = "saved"
	SessionChangeDeleted SessionChangeType = "deleted"
)

// SessionChange is published whenever a session is written or removed
type SessionChange struct {
	// Type is the kind of change
	Type SessionChangeType `json:"type"`

	// UserID is the owner of the session
	UserID string `json:"user_id"`

	// SessionID is the changed session
	SessionID string `json:"session_id"`

	// Session is the new state, nil for deletions
	Session *DrinkingSession `json:"session,omitempty"`
}
