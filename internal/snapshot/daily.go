package snapshot

import (
	"time"

	"github.com/ppiankov/gatherdb/internal/model"
)

const (
	// DateLayout is the ISO 8601 calendar date used in file names
	DateLayout = "2006-01-02"

	// DefaultPrefix starts every snapshot file name
	DefaultPrefix = "database_"
)

// Daily builds the day's snapshot: one herb and one ore node
func Daily() *model.Snapshot {
	s := model.NewSnapshot(model.DefaultCategories()...)
	s.Append(model.CategoryHerbs, model.Record{X: 0.25, Y: 0.33, MapID: 1434})
	s.Append(model.CategoryOres, model.Record{X: 0.52, Y: 0.74, MapID: 1434})
	return s
}

// FileName returns the snapshot file name for a date, e.g. database_2024-06-01.json
func FileName(prefix string, date time.Time) string {
	return prefix + date.Format(DateLayout) + ".json"
}

// ParseDate parses a YYYY-MM-DD date in the local time zone
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}
