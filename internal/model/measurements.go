package model

import "time"

// MeasurementGroup matches one element of the provider's measurements
// response.
//
// Example:
// [
//   {
//     "measurementKind": "ACTIVE_ENERGY",
//     "measurements": [
//       { "dateTime": "2026-08-28T19:00:00", "value": 10.0, "timeOfUse": "PONTA" }
//     ]
//   }
// ]
type MeasurementGroup struct {
	MeasurementKind string        `json:"measurementKind"`
	Measurements    []Measurement `json:"measurements"`
}

// Measurement is one sample row from the provider. Value may be absent.
// DateTime is provider-local without a zone designator.
type Measurement struct {
	DateTime  string   `json:"dateTime"`
	Value     *float64 `json:"value"`
	TimeOfUse string   `json:"timeOfUse"`
}

// MeasurementTimeLayout is the provider's dateTime format.
const MeasurementTimeLayout = "2006-01-02T15:04:05"

// BandFromTimeOfUse maps the provider's time-of-use tag onto a
// TariffBand. The provider is a Brazilian utility; tags arrive in
// Portuguese with inconsistent separators.
func BandFromTimeOfUse(tag string) TariffBand {
	switch tag {
	case "PONTA":
		return BandPeak
	case "FORA PONTA", "FORA_PONTA":
		return BandOffPeak
	case "INTERMEDIARIO", "INTERMEDIARIA":
		return BandIntermediate
	default:
		return BandUnknown
	}
}

// Readings flattens the provider groups into the engine's Reading shape.
// Rows with unparseable timestamps are dropped; everything else is kept,
// including rows with absent values.
func Readings(groups []MeasurementGroup) []Reading {
	var out []Reading
	for _, g := range groups {
		for _, m := range g.Measurements {
			ts, err := time.ParseInLocation(MeasurementTimeLayout, m.DateTime, time.Local)
			if err != nil {
				continue
			}
			out = append(out, Reading{
				Timestamp: ts,
				ValueKwh:  m.Value,
				Band:      BandFromTimeOfUse(m.TimeOfUse),
			})
		}
	}
	return out
}

// Profile is the provider's user record, as returned by the users
// endpoint.
type Profile struct {
	FullName string `json:"fullName"`
}
