package alexa

import "testing"

func TestTellWrapsSSML(t *testing.T) {
	resp := Tell("Bem vindo")
	if resp.Response.OutputSpeech.SSML != "<speak>Bem vindo</speak>" {
		t.Errorf("ssml = %q", resp.Response.OutputSpeech.SSML)
	}
	if resp.Response.OutputSpeech.Type != "SSML" {
		t.Errorf("type = %q, want SSML", resp.Response.OutputSpeech.Type)
	}
	if resp.Response.ShouldEndSession {
		t.Errorf("Tell should keep the session open")
	}
}

func TestTellWithCardAndEndingSession(t *testing.T) {
	resp := TellWithCard("Até mais Rocker", "PowerRocks", "Até mais Rocker").EndingSession()
	if resp.Response.Card == nil || resp.Response.Card.Title != "PowerRocks" {
		t.Errorf("card = %+v", resp.Response.Card)
	}
	if !resp.Response.ShouldEndSession {
		t.Errorf("EndingSession should set the flag")
	}
}

func TestSlotValue(t *testing.T) {
	req := RequestBody{
		Type: TypeIntent,
		Intent: &Intent{
			Name:  "PeriodoIntent",
			Slots: map[string]Slot{"periodo": {Name: "periodo", Value: "2026-08-01"}},
		},
	}
	if got := req.SlotValue("periodo"); got != "2026-08-01" {
		t.Errorf("slot = %q", got)
	}
	if got := req.SlotValue("missing"); got != "" {
		t.Errorf("missing slot = %q, want empty", got)
	}
	if got := (RequestBody{}).SlotValue("periodo"); got != "" {
		t.Errorf("nil intent slot = %q, want empty", got)
	}
}
