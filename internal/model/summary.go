package model

import "time"

// BandTotal is the per-band aggregate of a reading set.
type BandTotal struct {
	Band          TariffBand `json:"band"`
	TotalKwh      float64    `json:"total_kwh"`
	TotalCurrency float64    `json:"total_currency"`
}

// DailyAverageComparison compares a single day's consumption against the
// trailing 30-day daily average. Only populated for single-day periods.
type DailyAverageComparison struct {
	ComparisonAverageKwh float64 `json:"comparison_average_kwh"`
	IsSavingVsAverage    bool    `json:"is_saving_vs_average"`
}

// ConsumptionSummary is the aggregate result for one resolved period.
// Bands always contains exactly the three billable bands in the order of
// BillableBands, so callers can report all of them without nil checks.
// UnknownKwh is energy that could not be priced; it is excluded from the
// grand totals but reported so it is never silently lost.
type ConsumptionSummary struct {
	Bands         []BandTotal             `json:"bands"`
	TotalKwh      float64                 `json:"total_kwh"`
	TotalCurrency float64                 `json:"total_currency"`
	UnknownKwh    float64                 `json:"unknown_kwh,omitempty"`
	DailyAverage  *DailyAverageComparison `json:"daily_average,omitempty"`
}

// BandTotalFor returns the aggregate for one band. The zero BandTotal is
// returned for bands not in the summary (i.e. BandUnknown).
func (s ConsumptionSummary) BandTotalFor(band TariffBand) BandTotal {
	for _, bt := range s.Bands {
		if bt.Band == band {
			return bt
		}
	}
	return BandTotal{Band: band}
}

// Period is a resolved date range, both ends inclusive, in the
// provider's local timezone.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SingleDay reports whether the period covers exactly one calendar day.
func (p Period) SingleDay() bool {
	ys, ds := p.Start.Year(), p.Start.YearDay()
	ye, de := p.End.Year(), p.End.YearDay()
	return ys == ye && ds == de
}
