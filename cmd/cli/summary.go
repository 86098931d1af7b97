package main

import (
	"context"
	"fmt"
	"time"

	"powerrocks/internal/analysis"
	"powerrocks/internal/data"
	"powerrocks/internal/tariff"

	"github.com/spf13/cobra"
)

var (
	summaryPeriod string
	summaryFile   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Aggregate consumption for a period",
	Long: `Resolves the period the way the skill does: the first day of the current
month means month-to-date, anything else means today. With --data the
readings come from a local measurements JSON instead of the provider.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryPeriod, "period", "", "period date (YYYY-MM-DD, default: today)")
	summaryCmd.Flags().StringVar(&summaryFile, "data", "", "path to a measurements JSON file (offline mode)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	now := time.Now()
	utterance := summaryPeriod
	if utterance == "" {
		utterance = now.Format(analysis.PeriodDateLayout)
	}

	period, err := analysis.ResolvePeriod(utterance, now)
	if err != nil {
		return err
	}

	var source analysis.ReadingSource
	if summaryFile != "" {
		source = data.FileSource{Path: summaryFile}
	} else {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		source = data.NewProviderClient(
			cfg.Provider.BaseURL,
			cfg.Provider.SubscriptionID,
			cfg.Provider.UserID,
			cfg.Provider.SdpID,
			cfg.Provider.Username,
			cfg.Provider.Password,
			cfg.Provider.Timeout(),
		)
	}

	schedule := tariff.Default()
	analyzer := analysis.NewAnalyzer(source, schedule)
	summary, err := analyzer.Analyze(context.Background(), period)
	if err != nil {
		return err
	}

	fmt.Printf("Period: %s .. %s\n",
		period.Start.Format(analysis.PeriodDateLayout),
		period.End.Format(analysis.PeriodDateLayout))
	for _, bt := range summary.Bands {
		fmt.Printf("  %-13s %10.3f kWh  %10.2f\n", bt.Band, bt.TotalKwh, bt.TotalCurrency)
	}
	fmt.Printf("  %-13s %10.3f kWh  %10.2f\n", "TOTAL", summary.TotalKwh, summary.TotalCurrency)
	if summary.UnknownKwh > 0 {
		fmt.Printf("  unpriced energy: %.3f kWh\n", summary.UnknownKwh)
	}
	if summary.DailyAverage != nil {
		verdict := "above average"
		if summary.DailyAverage.IsSavingVsAverage {
			verdict = "saving vs average"
		}
		fmt.Printf("  30-day daily average: %.3f kWh (%s)\n",
			summary.DailyAverage.ComparisonAverageKwh, verdict)
	}
	return nil
}
