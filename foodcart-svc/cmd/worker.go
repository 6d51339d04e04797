package cmd

import (
	"errors"
	"os/signal"
	"syscall"

	"foodcart/config"
	"foodcart/foodcart-svc/internal/service"

	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume order events and warm the geocode cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		if settings.KafkaBroker == "" {
			return errors.New("KAFKA_BROKER is required for the worker")
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		d := newDeps(settings)
		defer d.Close()

		reader := config.NewKafkaReader(settings)
		defer reader.Close()

		service.NewGeocodeWarmer(reader, d.geocache).Start(ctx)
		return nil
	},
}
