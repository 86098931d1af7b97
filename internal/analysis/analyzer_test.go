package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"powerrocks/internal/model"
	"powerrocks/internal/tariff"
)

// fakeSource dispatches each fetch to a caller-supplied func.
type fakeSource struct {
	fn func(start, end time.Time) ([]model.Reading, error)
}

func (f fakeSource) Readings(_ context.Context, start, end time.Time) ([]model.Reading, error) {
	return f.fn(start, end)
}

func kwhAt(day time.Time, hour int, kwh float64) model.Reading {
	v := kwh
	return model.Reading{
		Timestamp: time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location()),
		ValueKwh:  &v,
	}
}

var today = time.Date(2026, 8, 28, 14, 0, 0, 0, time.Local)

func TestAnalyzeSingleDayComputesComparison(t *testing.T) {
	source := fakeSource{fn: func(start, end time.Time) ([]model.Reading, error) {
		if start.Equal(end) {
			// Today: 10 kWh at peak.
			return []model.Reading{kwhAt(start, 19, 10)}, nil
		}
		// Trailing 30 days: 600 kWh total -> 20 kWh daily average.
		var out []model.Reading
		for d := 0; d < 30; d++ {
			out = append(out, kwhAt(start.AddDate(0, 0, d), 10, 20))
		}
		return out, nil
	}}

	analyzer := NewAnalyzer(source, tariff.Default())
	summary, err := analyzer.Analyze(context.Background(), model.Period{Start: today, End: today})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if summary.DailyAverage == nil {
		t.Fatalf("single-day period missing daily average comparison")
	}
	if got := summary.DailyAverage.ComparisonAverageKwh; math.Abs(got-20) > 1e-9 {
		t.Errorf("average = %v, want 20", got)
	}
	if !summary.DailyAverage.IsSavingVsAverage {
		t.Errorf("10 kWh today vs 20 kWh average should count as saving")
	}
}

func TestAnalyzeMultiDaySkipsComparison(t *testing.T) {
	calls := 0
	source := fakeSource{fn: func(start, end time.Time) ([]model.Reading, error) {
		calls++
		return []model.Reading{kwhAt(start, 10, 5), kwhAt(end, 19, 2)}, nil
	}}

	analyzer := NewAnalyzer(source, tariff.Default())
	period := model.Period{Start: today.AddDate(0, 0, -27), End: today}
	summary, err := analyzer.Analyze(context.Background(), period)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if summary.DailyAverage != nil {
		t.Errorf("multi-day period must not carry a daily average comparison")
	}
	if calls != 1 {
		t.Errorf("expected a single fetch for multi-day period, got %d", calls)
	}
}

func TestAnalyzeEmptyReadings(t *testing.T) {
	source := fakeSource{fn: func(start, end time.Time) ([]model.Reading, error) {
		return nil, nil
	}}

	analyzer := NewAnalyzer(source, tariff.Default())
	_, err := analyzer.Analyze(context.Background(), model.Period{Start: today, End: today})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("error = %v, want ErrDataUnavailable", err)
	}
}

func TestAnalyzeSourceFailure(t *testing.T) {
	source := fakeSource{fn: func(start, end time.Time) ([]model.Reading, error) {
		return nil, fmt.Errorf("provider returned status 503")
	}}

	analyzer := NewAnalyzer(source, tariff.Default())
	_, err := analyzer.Analyze(context.Background(), model.Period{Start: today, End: today})
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("error = %v, want ErrDataUnavailable", err)
	}
}

func TestAnalyzeAuthenticationPassesThrough(t *testing.T) {
	source := fakeSource{fn: func(start, end time.Time) ([]model.Reading, error) {
		return nil, fmt.Errorf("login: %w", ErrAuthentication)
	}}

	analyzer := NewAnalyzer(source, tariff.Default())
	_, err := analyzer.Analyze(context.Background(), model.Period{Start: today, End: today})
	if !errors.Is(err, ErrAuthentication) {
		t.Errorf("error = %v, want ErrAuthentication", err)
	}
	if errors.Is(err, ErrDataUnavailable) {
		t.Errorf("authentication failure must not be folded into ErrDataUnavailable")
	}
}

func TestAnalyzeTrailingFailureDegrades(t *testing.T) {
	source := fakeSource{fn: func(start, end time.Time) ([]model.Reading, error) {
		if start.Equal(end) {
			return []model.Reading{kwhAt(start, 19, 10)}, nil
		}
		return nil, fmt.Errorf("provider returned status 503")
	}}

	analyzer := NewAnalyzer(source, tariff.Default())
	summary, err := analyzer.Analyze(context.Background(), model.Period{Start: today, End: today})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if summary.DailyAverage != nil {
		t.Errorf("comparison should be dropped when the trailing fetch fails")
	}
	if math.Abs(summary.TotalKwh-10) > 1e-9 {
		t.Errorf("day summary lost: total = %v, want 10", summary.TotalKwh)
	}
}
