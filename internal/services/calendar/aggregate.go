package calendar

import (
	"sort"
	"time"

	"github.com/KirkDiggler/kiroku/internal/models"
)

// ZoneSpread is the widest gap between two UTC offsets (-12:00 to +14:00).
// A range cut in one zone must grow by it on both sides to hold every session
// whose own zone places it inside the range.
const ZoneSpread = 26 * time.Hour

// PadRange widens [from, to) by ZoneSpread on both sides
func PadRange(from, to time.Time) (time.Time, time.Time) {
	return from.Add(-ZoneSpread), to.Add(ZoneSpread)
}

// DayKey returns the calendar day a session belongs to, computed in the
// session's own timezone.
func DayKey(session *models.DrinkingSession) string {
	return session.LocalStart().Format(models.DateFormat)
}

// CalculateTotalUnits sums count times weight over every drink of the session.
// Drinks without a weight count as zero units. Drinks are summed in a fixed
// order so the float result never depends on map iteration.
func CalculateTotalUnits(drinks models.Drinks, prefs *models.Preferences) float64 {
	if prefs == nil {
		return 0
	}
	total := 0.0
	for _, key := range drinkOrder(drinks) {
		total += float64(drinks[key]) * prefs.DrinksToUnits[key]
	}
	return total
}

// drinkOrder lists the known drinks first, then unknown keys sorted
func drinkOrder(drinks models.Drinks) []models.DrinkKey {
	keys := make([]models.DrinkKey, 0, len(drinks))
	for _, key := range models.DrinkKeys {
		if _, ok := drinks[key]; ok {
			keys = append(keys, key)
		}
	}

	var unknown []models.DrinkKey
	for key := range drinks {
		if !key.IsValid() {
			unknown = append(unknown, key)
		}
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })

	return append(keys, unknown...)
}

// ColorForUnits picks the colour of the highest threshold the total reaches.
// A total below every threshold gets ColorNone.
func ColorForUnits(units float64, prefs *models.Preferences) models.ColorTag {
	color := models.ColorNone
	for _, threshold := range prefs.SortedThresholds() {
		if units >= threshold.Units {
			color = threshold.Color
		}
	}
	return color
}

// Aggregate folds sessions into per day totals. Sessions are folded by start
// time then ID, so the same set of sessions yields the same map whatever
// order it arrives in.
func Aggregate(sessions []*models.DrinkingSession, prefs *models.Preferences) map[string]*models.DayAggregate {
	ordered := make([]*models.DrinkingSession, 0, len(sessions))
	for _, session := range sessions {
		if session != nil {
			ordered = append(ordered, session)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.ID < b.ID
	})

	days := make(map[string]*models.DayAggregate)
	for _, session := range ordered {
		key := DayKey(session)
		day, ok := days[key]
		if !ok {
			day = &models.DayAggregate{Date: key}
			days[key] = day
		}
		day.TotalUnits += CalculateTotalUnits(session.Drinks, prefs)
		day.SessionCount++
		if session.Blackout {
			day.Blackout = true
		}
	}

	for _, day := range days {
		if day.Blackout {
			day.ColorTag = models.ColorBlackout
			continue
		}
		day.ColorTag = ColorForUnits(day.TotalUnits, prefs)
	}

	return days
}
