// Package alexa holds the voice-platform wire envelopes and response
// builders. Shapes follow the Alexa skill request/response JSON.
package alexa

// Request kinds carried in RequestBody.Type.
const (
	TypeLaunch       = "LaunchRequest"
	TypeIntent       = "IntentRequest"
	TypeSessionEnded = "SessionEndedRequest"
)

// RequestEnvelope is the inbound skill request.
type RequestEnvelope struct {
	Version string      `json:"version"`
	Session *Session    `json:"session,omitempty"`
	Request RequestBody `json:"request"`
}

// Session identifies the conversation the request belongs to.
type Session struct {
	SessionID string `json:"sessionId"`
	New       bool   `json:"new"`
}

// RequestBody is the type-tagged request payload. Intent is only set
// when Type is TypeIntent.
type RequestBody struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// Intent names an action with its slot values.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is one filled slot of an intent.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SlotValue returns the named slot's value, or "" when unfilled.
func (r RequestBody) SlotValue(name string) string {
	if r.Intent == nil {
		return ""
	}
	return r.Intent.Slots[name].Value
}
