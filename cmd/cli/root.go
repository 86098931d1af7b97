package main

import (
	"fmt"
	"os"

	"powerrocks/internal/config"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "powerrocks",
	Short: "Query tariff-banded energy consumption from the provider API",
	Long: `PowerRocks CLI runs the same consumption analysis the voice skill uses:
it fetches timestamped kWh readings, buckets them into peak, off-peak and
intermediate tariff bands, and prices them with the fixed per-band rates.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: CONFIG_FILE env or environment only)")
}

// loadConfig loads the configuration from file and environment.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	return config.Load(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
