package tariff

import (
	"errors"
	"fmt"
	"strings"

	"powerrocks/internal/model"
)

// ErrUnknownBand is returned when a rate is requested for a band that
// has no price. This indicates a schedule misconfiguration or caller
// bug, not bad input data.
var ErrUnknownBand = errors.New("tariff: no rate for unknown band")

// Window is a [start, end] time-of-day interval in seconds since
// midnight, inclusive on both ends, priced at RatePerKwh.
type Window struct {
	StartSec   int
	EndSec     int
	RatePerKwh float64
}

// Contains checks whether sec falls inside the window. Both bounds are
// inclusive; the provider's published tariff table is written that way.
func (w Window) Contains(sec int) bool {
	return sec >= w.StartSec && sec <= w.EndSec
}

// entry binds one window to its band. Order matters: BandFor scans
// entries in slice order and the first containing window wins.
type entry struct {
	Band   model.TariffBand
	Window Window
}

// Schedule is the fixed mapping from time of day to tariff band and
// rate. A band may own more than one non-contiguous window per day.
type Schedule struct {
	entries []entry
	rates   map[model.TariffBand]float64
}

// Default returns the provider's published residential schedule.
// The windows do not tile the full day: 17:30–17:45 and 23:45–00:00
// fall outside every window and resolve to BandUnknown.
func Default() *Schedule {
	s := &Schedule{
		entries: []entry{
			{model.BandPeak, Window{hhmm("18:45"), hhmm("21:30"), 0.83916}},
			{model.BandOffPeak, Window{hhmm("00:00"), hhmm("17:30"), 0.39765}},
			{model.BandOffPeak, Window{hhmm("22:45"), hhmm("23:45"), 0.39765}},
			{model.BandIntermediate, Window{hhmm("17:45"), hhmm("18:30"), 0.53394}},
			{model.BandIntermediate, Window{hhmm("21:30"), hhmm("22:30"), 0.53394}},
		},
		rates: map[model.TariffBand]float64{},
	}
	for _, e := range s.entries {
		s.rates[e.Band] = e.Window.RatePerKwh
	}
	return s
}

// BandFor maps seconds-since-midnight onto a band. It is total: any
// second outside all windows maps to BandUnknown. When windows overlap
// (21:30 belongs to both Peak and Intermediate under inclusive bounds)
// the first match in schedule order wins.
func (s *Schedule) BandFor(sec int) model.TariffBand {
	for _, e := range s.entries {
		if e.Window.Contains(sec) {
			return e.Band
		}
	}
	return model.BandUnknown
}

// RateFor returns the per-kWh rate for a billable band.
func (s *Schedule) RateFor(band model.TariffBand) (float64, error) {
	rate, ok := s.rates[band]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownBand, band)
	}
	return rate, nil
}

// Windows returns the windows owned by a band, in schedule order.
func (s *Schedule) Windows(band model.TariffBand) []Window {
	var out []Window
	for _, e := range s.entries {
		if e.Band == band {
			out = append(out, e.Window)
		}
	}
	return out
}

// hhmm converts "HH:MM" to seconds since midnight. Panics on malformed
// input; it is only used for the fixed schedule literals above.
func hhmm(v string) int {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		panic(fmt.Errorf("invalid time %q, expected HH:MM", v))
	}
	var h, m int
	if _, err := fmt.Sscanf(parts[0], "%d", &h); err != nil {
		panic(fmt.Errorf("invalid hour in %q", v))
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &m); err != nil {
		panic(fmt.Errorf("invalid minute in %q", v))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		panic(fmt.Errorf("invalid time %q", v))
	}
	return h*3600 + m*60
}
