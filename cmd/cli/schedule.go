package main

import (
	"fmt"

	"powerrocks/internal/model"
	"powerrocks/internal/tariff"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the fixed tariff schedule",
	Run: func(cmd *cobra.Command, args []string) {
		s := tariff.Default()
		for _, band := range model.BillableBands {
			for _, w := range s.Windows(band) {
				fmt.Printf("%-13s %s - %s  @ %.5f/kWh\n",
					band, clock(w.StartSec), clock(w.EndSec), w.RatePerKwh)
			}
		}
	},
}

func clock(sec int) string {
	return fmt.Sprintf("%02d:%02d", sec/3600, sec%3600/60)
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
}
