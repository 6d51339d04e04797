package cmd

import (
	"fmt"
	"os"

	"foodcart/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "foodcart-svc",
	Short: "Food ordering backend",
	Long: `foodcart-svc serves the storefront and manager HTTP API, warms the geocode
cache from order events and manages the database schema and demo data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.Load(viper.GetViper(), cfgFile)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.AddCommand(serveCmd, workerCmd, migrateCmd, seedCmd, geocodeCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
