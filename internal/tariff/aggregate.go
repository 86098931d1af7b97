package tariff

import "powerrocks/internal/model"

// Aggregator buckets readings by tariff band and prices them.
type Aggregator struct {
	Schedule *Schedule
}

// NewAggregator creates an aggregator over the given schedule.
func NewAggregator(s *Schedule) *Aggregator {
	return &Aggregator{Schedule: s}
}

// Aggregate sums kWh per band across the readings and converts each
// band's total to currency. All three billable bands are always present
// in the result, zero-valued when absent from the input. Readings that
// classify to BandUnknown are excluded from the grand totals but their
// energy is surfaced as UnknownKwh.
func (a *Aggregator) Aggregate(readings []model.Reading) model.ConsumptionSummary {
	kwhByBand := map[model.TariffBand]float64{}
	var unknownKwh float64

	for _, r := range readings {
		band := Classify(a.Schedule, r)
		if band == model.BandUnknown {
			unknownKwh += r.Kwh()
			continue
		}
		kwhByBand[band] += r.Kwh()
	}

	summary := model.ConsumptionSummary{
		Bands:      make([]model.BandTotal, 0, len(model.BillableBands)),
		UnknownKwh: unknownKwh,
	}
	for _, band := range model.BillableBands {
		kwh := kwhByBand[band]
		rate, err := a.Schedule.RateFor(band)
		if err != nil {
			// Billable bands always have a rate in a valid schedule.
			panic(err)
		}
		bt := model.BandTotal{
			Band:          band,
			TotalKwh:      kwh,
			TotalCurrency: kwh * rate,
		}
		summary.Bands = append(summary.Bands, bt)
		summary.TotalKwh += bt.TotalKwh
		summary.TotalCurrency += bt.TotalCurrency
	}
	return summary
}
