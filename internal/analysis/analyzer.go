package analysis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"powerrocks/internal/model"
	"powerrocks/internal/tariff"
)

// trailingDays is the window length of the daily-average comparison.
const trailingDays = 30

// ReadingSource fetches consumption readings for an inclusive date
// range. internal/data implements it against the provider API; the CLI
// and tests substitute file-backed and fake sources.
type ReadingSource interface {
	Readings(ctx context.Context, start, end time.Time) ([]model.Reading, error)
}

// Analyzer runs the consumption computation for a resolved period.
type Analyzer struct {
	Source     ReadingSource
	Aggregator *tariff.Aggregator
}

// NewAnalyzer wires an analyzer over a reading source and schedule.
func NewAnalyzer(source ReadingSource, schedule *tariff.Schedule) *Analyzer {
	return &Analyzer{
		Source:     source,
		Aggregator: tariff.NewAggregator(schedule),
	}
}

// Analyze fetches the period's readings and aggregates them per band.
// Single-day periods additionally get a trailing 30-day daily-average
// comparison; multi-day periods never do.
//
// A failed or empty fetch surfaces as ErrDataUnavailable unless the
// source reports an authentication failure, which passes through as
// ErrAuthentication. Callers translate both into spoken apologies.
func (a *Analyzer) Analyze(ctx context.Context, period model.Period) (model.ConsumptionSummary, error) {
	readings, err := a.fetch(ctx, period.Start, period.End)
	if err != nil {
		return model.ConsumptionSummary{}, err
	}

	summary := a.Aggregator.Aggregate(readings)
	if !period.SingleDay() {
		return summary, nil
	}

	avg, err := a.trailingDailyAverage(ctx, period.End)
	if err != nil {
		// The day's own summary is still good; report it without the
		// comparison rather than failing the whole request.
		log.Printf("[Analyzer] trailing average unavailable: %v", err)
		return summary, nil
	}
	summary.DailyAverage = &model.DailyAverageComparison{
		ComparisonAverageKwh: avg,
		IsSavingVsAverage:    avg > summary.TotalKwh,
	}
	return summary, nil
}

// trailingDailyAverage aggregates [end-30d, end] and divides total kWh
// by the window length.
func (a *Analyzer) trailingDailyAverage(ctx context.Context, end time.Time) (float64, error) {
	start := end.AddDate(0, 0, -trailingDays)
	readings, err := a.fetch(ctx, start, end)
	if err != nil {
		return 0, err
	}
	total := a.Aggregator.Aggregate(readings)
	return total.TotalKwh / trailingDays, nil
}

func (a *Analyzer) fetch(ctx context.Context, start, end time.Time) ([]model.Reading, error) {
	readings, err := a.Source.Readings(ctx, start, end)
	if err != nil {
		if errors.Is(err, ErrAuthentication) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if len(readings) == 0 {
		return nil, fmt.Errorf("%w: no readings for %s..%s",
			ErrDataUnavailable,
			start.Format(PeriodDateLayout), end.Format(PeriodDateLayout))
	}
	return readings, nil
}
