package dialog

import (
	"fmt"
	"strings"

	"powerrocks/internal/model"
)

const (
	speechPrompt        = "O que você deseja saber?"
	speechNotUnderstood = "Desculpe, não entendi. Pode repetir?"
)

// renderSummary turns an aggregate into the spoken summary. Single-day
// periods open with "Hoje"; month-to-date periods name the range.
func renderSummary(period model.Period, summary model.ConsumptionSummary) string {
	var b strings.Builder

	if period.SingleDay() {
		b.WriteString("Hoje você consumiu ")
	} else {
		fmt.Fprintf(&b, "De %s até %s você consumiu ",
			period.Start.Format("02/01"), period.End.Format("02/01"))
	}
	fmt.Fprintf(&b, "%s quilowatt hora: ", num(summary.TotalKwh))

	parts := make([]string, 0, len(summary.Bands))
	for _, bt := range summary.Bands {
		parts = append(parts, fmt.Sprintf("%s no horário %s", num(bt.TotalKwh), bandName(bt.Band)))
	}
	b.WriteString(strings.Join(parts, ", "))
	fmt.Fprintf(&b, ". O custo total foi de %s reais.", num(summary.TotalCurrency))

	if summary.DailyAverage != nil {
		fmt.Fprintf(&b, " Sua média diária dos últimos 30 dias é de %s quilowatt hora.",
			num(summary.DailyAverage.ComparisonAverageKwh))
		if summary.DailyAverage.IsSavingVsAverage {
			b.WriteString(" Você está economizando em relação à média.")
		} else {
			b.WriteString(" Você está consumindo acima da média.")
		}
	}
	return b.String()
}

func bandName(band model.TariffBand) string {
	switch band {
	case model.BandPeak:
		return "de ponta"
	case model.BandOffPeak:
		return "fora ponta"
	case model.BandIntermediate:
		return "intermediário"
	default:
		return "desconhecido"
	}
}

// num renders a value with two decimals and a Portuguese decimal comma.
func num(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
