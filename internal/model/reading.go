package model

import "time"

// TariffBand is a time-of-day pricing category.
type TariffBand string

const (
	BandPeak         TariffBand = "PEAK"
	BandOffPeak      TariffBand = "OFF_PEAK"
	BandIntermediate TariffBand = "INTERMEDIATE"
	BandUnknown      TariffBand = "UNKNOWN"
)

// BillableBands lists the three priced bands in reporting order.
// BandUnknown is never billable.
var BillableBands = []TariffBand{BandPeak, BandOffPeak, BandIntermediate}

// Reading is one consumption sample fetched from the provider.
// ValueKwh is a pointer because the provider omits the value on some
// samples; absent is treated as zero downstream. Band carries the
// provider's own time-of-use tag when present, BandUnknown otherwise.
type Reading struct {
	Timestamp time.Time  `json:"timestamp"`
	ValueKwh  *float64   `json:"value_kwh"`
	Band      TariffBand `json:"band"`
}

// Kwh returns the sample value with absent treated as 0.
func (r Reading) Kwh() float64 {
	if r.ValueKwh == nil {
		return 0
	}
	return *r.ValueKwh
}

// SecondOfDay returns the reading's local time-of-day in seconds since
// midnight, in [0, 86399].
func (r Reading) SecondOfDay() int {
	return r.Timestamp.Hour()*3600 + r.Timestamp.Minute()*60 + r.Timestamp.Second()
}
