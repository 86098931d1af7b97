package analysis

import (
	"errors"
	"fmt"
)

// Sentinel errors recovered at the dialog boundary. Neither should ever
// reach the voice platform as a hard failure.
var (
	// ErrAuthentication means the provider credential exchange failed
	// or returned no token.
	ErrAuthentication = errors.New("provider authentication failed")

	// ErrDataUnavailable means the readings or profile fetch failed,
	// timed out, or returned no data.
	ErrDataUnavailable = errors.New("consumption data unavailable")
)

// PeriodParseError reports a period utterance that could not be parsed
// as a calendar date. The boundary maps it to a "didn't understand"
// response.
type PeriodParseError struct {
	Utterance string
}

func (e *PeriodParseError) Error() string {
	return fmt.Sprintf("unrecognized period %q", e.Utterance)
}
