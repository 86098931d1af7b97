package alexa

import "fmt"

// ResponseEnvelope is the outbound skill response.
type ResponseEnvelope struct {
	Version  string   `json:"version"`
	Response Response `json:"response"`
}

// Response carries the rendered speech, an optional card and the
// end-session flag.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is SSML speech markup.
type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml"`
}

// Card is a companion-app display card.
type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Reprompt is spoken when the user stays silent after the response.
type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech"`
}

// Tell builds a speech-only response that keeps the session open.
func Tell(text string) ResponseEnvelope {
	return ResponseEnvelope{
		Version: "1.0",
		Response: Response{
			OutputSpeech: ssml(text),
		},
	}
}

// TellWithCard builds a response with both speech and a card.
func TellWithCard(text, cardTitle, cardContent string) ResponseEnvelope {
	resp := Tell(text)
	resp.Response.Card = &Card{
		Type:    "Simple",
		Title:   cardTitle,
		Content: cardContent,
	}
	return resp
}

// WithReprompt attaches reprompt speech.
func (r ResponseEnvelope) WithReprompt(text string) ResponseEnvelope {
	r.Response.Reprompt = &Reprompt{OutputSpeech: ssml(text)}
	return r
}

// EndingSession marks the response as terminal.
func (r ResponseEnvelope) EndingSession() ResponseEnvelope {
	r.Response.ShouldEndSession = true
	return r
}

func ssml(text string) *OutputSpeech {
	return &OutputSpeech{
		Type: "SSML",
		SSML: fmt.Sprintf("<speak>%s</speak>", text),
	}
}
