package models

import "sort"

// ColorTag is the calendar colour assigned to an amount of units
type ColorTag string

const (
	ColorNone   ColorTag = ""
	ColorGreen  ColorTag = "green"
	ColorYellow ColorTag = "yellow"
	ColorOrange ColorTag = "orange"
	ColorRed    ColorTag = "red"

	// ColorBlackout overrides any unit based colour for a day with a blackout
	ColorBlackout ColorTag = "black"
)

// ColorThreshold assigns Color to totals of at least Units
type ColorThreshold struct {
	Units float64  `json:"units"`
	Color ColorTag `json:"color"`
}

// Preferences holds the per-user tables used to turn drinks into colours
type Preferences struct {
	// DrinksToUnits is the unit weight of each drink
	DrinksToUnits map[DrinkKey]float64 `json:"drinks_to_units"`

	// UnitsToColors is the threshold table for calendar colours
	UnitsToColors []ColorThreshold `json:"units_to_colors"`
}

// DefaultPreferences returns the preferences every new user starts with
func DefaultPreferences() *Preferences {
	return &Preferences{
		DrinksToUnits: map[DrinkKey]float64{
			DrinkSmallBeer:  0.5,
			DrinkBeer:       1,
			DrinkWine:       1,
			DrinkWeakShot:   0.5,
			DrinkStrongShot: 1,
			DrinkCocktail:   1.5,
			DrinkOther:      1,
		},
		UnitsToColors: []ColorThreshold{
			{Units: 0, Color: ColorGreen},
			{Units: 5, Color: ColorYellow},
			{Units: 10, Color: ColorRed},
		},
	}
}

// SortedThresholds returns the colour thresholds ordered by ascending units
func (p *Preferences) SortedThresholds() []ColorThreshold {
	if p == nil {
		return nil
	}
	out := make([]ColorThreshold, len(p.UnitsToColors))
	copy(out, p.UnitsToColors)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Units < out[j].Units
	})
	return out
}
