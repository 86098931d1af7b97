package data

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"powerrocks/internal/model"
)

// FileSource serves readings from a JSON file holding a provider
// measurements response. Used by the CLI's offline mode and in tests;
// the server always talks to the live provider.
type FileSource struct {
	Path string
}

// Readings loads the file and filters rows to the inclusive date range.
// Implements analysis.ReadingSource.
func (f FileSource) Readings(_ context.Context, start, end time.Time) ([]model.Reading, error) {
	groups, err := LoadMeasurementsJSON(f.Path)
	if err != nil {
		return nil, err
	}
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	to := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, end.Location())

	var out []model.Reading
	for _, r := range model.Readings(groups) {
		if r.Timestamp.Before(from) || r.Timestamp.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// LoadMeasurementsJSON reads a provider measurements response from disk.
func LoadMeasurementsJSON(path string) ([]model.MeasurementGroup, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var groups []model.MeasurementGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
