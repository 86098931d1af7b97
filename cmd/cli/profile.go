package main

import (
	"context"
	"fmt"

	"powerrocks/internal/data"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Fetch the account holder's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		client := data.NewProviderClient(
			cfg.Provider.BaseURL,
			cfg.Provider.SubscriptionID,
			cfg.Provider.UserID,
			cfg.Provider.SdpID,
			cfg.Provider.Username,
			cfg.Provider.Password,
			cfg.Provider.Timeout(),
		)
		profile, err := client.UserProfile(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(profile.FullName)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
