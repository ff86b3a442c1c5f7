package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record is a single gathering point on a map
type Record struct {
	X     float64 `json:"x"`     // Horizontal coordinate (0-1)
	Y     float64 `json:"y"`     // Vertical coordinate (0-1)
	MapID int     `json:"mapID"` // Map/zone identifier
}

// MarshalJSON writes the record as {"x": 0.25, "y": 0.33, "mapID": 1434}
func (r Record) MarshalJSON() ([]byte, error) {
	x, err := formatFloat(r.X)
	if err != nil {
		return nil, fmt.Errorf("marshal x: %w", err)
	}
	y, err := formatFloat(r.Y)
	if err != nil {
		return nil, fmt.Errorf("marshal y: %w", err)
	}
	return fmt.Appendf(nil, `{"x": %s, "y": %s, "mapID": %d}`, x, y, r.MapID), nil
}

// formatFloat keeps whole numbers fractional (1 -> 1.0) so coordinates stay floats
func formatFloat(v float64) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	s := string(data)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

// Category labels a group of records
type Category string

const (
	CategoryHerbs Category = "Herbs"
	CategoryOres  Category = "Ores"
)

// DefaultCategories returns the fixed categories in output order
func DefaultCategories() []Category {
	return []Category{CategoryHerbs, CategoryOres}
}
