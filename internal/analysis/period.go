package analysis

import (
	"time"

	"powerrocks/internal/model"
)

// PeriodDateLayout is the format period slot values arrive in from the
// voice platform.
const PeriodDateLayout = "2006-01-02"

// ResolvePeriod turns a period utterance into a concrete date range.
//
// Only two utterances are really supported: "this month" arrives as the
// first day of the current month and resolves to month-to-date; any
// other well-formed date degrades to a single-day snapshot of today.
// Malformed input fails with PeriodParseError.
//
// The function is pure in (utterance, now): resolving the same pair
// twice gives the same period.
func ResolvePeriod(utterance string, now time.Time) (model.Period, error) {
	parsed, err := time.ParseInLocation(PeriodDateLayout, utterance, now.Location())
	if err != nil {
		return model.Period{}, &PeriodParseError{Utterance: utterance}
	}

	first := firstDayOfMonth(now)
	if sameDate(parsed, first) {
		return model.Period{Start: first, End: now}, nil
	}
	return model.Period{Start: now, End: now}, nil
}

func firstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
