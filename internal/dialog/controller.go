// Package dialog drives the conversation: it maps voice-platform
// requests onto the analysis engine and renders spoken responses. All
// engine errors are recovered here; the conversation only ever ends on
// an explicit SessionEndedRequest.
package dialog

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"powerrocks/internal/alexa"
	"powerrocks/internal/analysis"
	"powerrocks/internal/model"
	"powerrocks/internal/tariff"
)

// Intent names registered in the skill's interaction model.
const (
	IntentPeriod      = "PeriodoIntent"
	IntentContinue    = "ContinuarIntent"
	IntentCurrentBand = "HorarioForaPonta"
)

// PeriodSlot is the slot carrying the period utterance.
const PeriodSlot = "periodo"

const cardTitle = "PowerRocks"

// ProfileSource fetches the account holder's profile.
type ProfileSource interface {
	UserProfile(ctx context.Context) (model.Profile, error)
}

// Controller is the request-kind state machine.
type Controller struct {
	Profiles ProfileSource
	Analyzer *analysis.Analyzer
	Schedule *tariff.Schedule

	// Now is the clock used to resolve periods; overridable in tests.
	Now func() time.Time
}

// NewController wires the controller with the real clock.
func NewController(profiles ProfileSource, analyzer *analysis.Analyzer, schedule *tariff.Schedule) *Controller {
	return &Controller{
		Profiles: profiles,
		Analyzer: analyzer,
		Schedule: schedule,
		Now:      time.Now,
	}
}

// Handle dispatches one skill request. It never returns an error: every
// failure is rendered as an apology that keeps the session open.
func (c *Controller) Handle(ctx context.Context, req alexa.RequestEnvelope) alexa.ResponseEnvelope {
	switch req.Request.Type {
	case alexa.TypeLaunch:
		return c.launch(ctx)
	case alexa.TypeIntent:
		return c.intent(ctx, req.Request)
	case alexa.TypeSessionEnded:
		return alexa.TellWithCard("Até mais Rocker", cardTitle, "Até mais Rocker").EndingSession()
	default:
		log.Printf("[Dialog] unsupported request type %q", req.Request.Type)
		return alexa.Tell(speechNotUnderstood).WithReprompt(speechPrompt)
	}
}

func (c *Controller) launch(ctx context.Context) alexa.ResponseEnvelope {
	greeting := "Bem vindo ao PowerRocks."
	profile, err := c.Profiles.UserProfile(ctx)
	if err != nil {
		// Greet generically; a profile hiccup must not end the session.
		log.Printf("[Dialog] profile fetch failed: %v", err)
	} else {
		greeting = "Bem vindo ao PowerRocks, " + firstName(profile.FullName) + "."
	}
	return alexa.Tell(greeting + " O que você deseja saber, o consumo de hoje ou do mês?").
		WithReprompt(speechPrompt)
}

func (c *Controller) intent(ctx context.Context, req alexa.RequestBody) alexa.ResponseEnvelope {
	if req.Intent == nil {
		return alexa.Tell(speechNotUnderstood).WithReprompt(speechPrompt)
	}
	switch req.Intent.Name {
	case IntentPeriod, IntentContinue:
		return c.consumption(ctx, req.SlotValue(PeriodSlot))
	case IntentCurrentBand:
		return c.currentBand()
	default:
		log.Printf("[Dialog] unrecognized intent %q", req.Intent.Name)
		return alexa.Tell(speechNotUnderstood).WithReprompt(speechPrompt)
	}
}

func (c *Controller) consumption(ctx context.Context, utterance string) alexa.ResponseEnvelope {
	now := c.Now()
	period, err := analysis.ResolvePeriod(utterance, now)
	if err != nil {
		log.Printf("[Dialog] period resolve failed: %v", err)
		return alexa.Tell(speechNotUnderstood).WithReprompt(speechPrompt)
	}

	summary, err := c.Analyzer.Analyze(ctx, period)
	if err != nil {
		return c.apologize(err)
	}

	text := renderSummary(period, summary)
	return alexa.TellWithCard(text, cardTitle, text).WithReprompt(speechPrompt)
}

// currentBand answers which tariff band is in effect right now.
func (c *Controller) currentBand() alexa.ResponseEnvelope {
	now := c.Now()
	sec := now.Hour()*3600 + now.Minute()*60 + now.Second()
	band := c.Schedule.BandFor(sec)
	var text string
	if band == model.BandUnknown {
		text = "Agora você está fora das janelas tarifárias."
	} else {
		text = "Você está no horário " + bandName(band) + "."
	}
	return alexa.TellWithCard(text, cardTitle, text).WithReprompt(speechPrompt)
}

func (c *Controller) apologize(err error) alexa.ResponseEnvelope {
	switch {
	case errors.Is(err, analysis.ErrAuthentication):
		log.Printf("[Dialog] authentication failed: %v", err)
		return alexa.Tell("Desculpe, não consegui acessar sua conta de energia agora. Tente novamente mais tarde.").
			WithReprompt(speechPrompt)
	case errors.Is(err, analysis.ErrDataUnavailable):
		log.Printf("[Dialog] data unavailable: %v", err)
		return alexa.Tell("Desculpe, não consegui consultar seu consumo agora. Tente novamente mais tarde.").
			WithReprompt(speechPrompt)
	default:
		log.Printf("[Dialog] unexpected failure: %v", err)
		return alexa.Tell(speechNotUnderstood).WithReprompt(speechPrompt)
	}
}

func firstName(full string) string {
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
