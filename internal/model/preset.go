package model

import (
	"encoding/json"

	"golang.org/x/text/cases"
)

type DrinkType string

const (
	DrinkTypeBeer    DrinkType = "BEER"
	DrinkTypeWine    DrinkType = "WINE"
	DrinkTypeSpirits DrinkType = "SPIRITS"
	DrinkTypeCustom  DrinkType = "CUSTOM"
)

var drinkTypes = []DrinkType{DrinkTypeBeer, DrinkTypeWine, DrinkTypeSpirits, DrinkTypeCustom}

// ParseDrinkType matches case-insensitively; anything unknown is CUSTOM.
func ParseDrinkType(v string) DrinkType {
	fold := cases.Fold()
	folded := fold.String(v)
	for _, t := range drinkTypes {
		if fold.String(string(t)) == folded {
			return t
		}
	}
	return DrinkTypeCustom
}

func (t DrinkType) DisplayName() string {
	switch t {
	case DrinkTypeBeer:
		return "Beer"
	case DrinkTypeWine:
		return "Wine"
	case DrinkTypeSpirits:
		return "Spirits"
	default:
		return "Custom"
	}
}

func (t *DrinkType) UnmarshalJSON(data []byte) error {
	var raw string
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	*t = ParseDrinkType(raw)
	return nil
}

// DrinkPreset is a reusable drink template. Presets are not persisted.
type DrinkPreset struct {
	Name     string    `json:"name"`
	Type     DrinkType `json:"type"`
	Volume   int       `json:"volume"`
	Strength float64   `json:"strength"`
	Favorite bool      `json:"favorite"`
}

// DefaultPresets is the built-in catalog offered before a user adds their own.
func DefaultPresets() []DrinkPreset {
	return []DrinkPreset{
		{Name: "Pint", Type: DrinkTypeBeer, Volume: 500, Strength: 5.0, Favorite: true},
		{Name: "Bottle", Type: DrinkTypeBeer, Volume: 330, Strength: 5.0},
		{Name: "Glass of wine", Type: DrinkTypeWine, Volume: 175, Strength: 12.5},
		{Name: "Shot", Type: DrinkTypeSpirits, Volume: 40, Strength: 40.0},
	}
}

// FindPreset looks a preset up by name, case-insensitively.
func FindPreset(presets []DrinkPreset, name string) (DrinkPreset, bool) {
	fold := cases.Fold()
	folded := fold.String(name)
	for _, p := range presets {
		if fold.String(p.Name) == folded {
			return p, true
		}
	}
	return DrinkPreset{}, false
}
