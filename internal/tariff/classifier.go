package tariff

import "powerrocks/internal/model"

// Classify assigns a reading to a tariff band. A non-unknown band tag
// from the provider is trusted as-is; untagged readings are classified
// by the schedule from their local time of day.
func Classify(s *Schedule, r model.Reading) model.TariffBand {
	if r.Band != "" && r.Band != model.BandUnknown {
		return r.Band
	}
	return s.BandFor(r.SecondOfDay())
}
