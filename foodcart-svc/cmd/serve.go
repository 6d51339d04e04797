package cmd

import (
	"log"
	"os/signal"
	"syscall"

	"foodcart/config"
	httpapi "foodcart/foodcart-svc/internal/api/http"
	"foodcart/foodcart-svc/internal/service"
	"foodcart/foodcart-svc/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		d := newDeps(settings)
		defer d.Close()

		if err := d.repo.EnsureSchema(ctx); err != nil {
			return err
		}

		var publisher service.OrderPublisher
		if writer := config.NewKafkaWriter(settings); writer != nil {
			defer writer.Close()
			publisher = storage.NewKafkaPublisher(writer)
		} else {
			log.Println("[foodcart-svc] KAFKA_BROKER not set, order events disabled")
		}

		validator := service.NewOrderValidator(d.repo, settings.PhoneRegion)
		handler := httpapi.NewHandler(
			service.NewCatalogService(d.repo, d.repo, settings.MediaURL, settings.StaticURL),
			service.NewOrderService(validator, d.repo, publisher),
			service.NewOrderBoard(d.repo, d.repo, d.geocache),
			service.NewOrderWorkflow(d.repo, service.MapLinkQRGenerator{}),
		)
		return httpapi.StartServer(ctx, settings.HTTPAddr, httpapi.NewRouter(handler))
	},
}

func init() {
	serveCmd.Flags().String("http-addr", ":8080", "listen address")
	viper.BindPFlag("http_addr", serveCmd.Flags().Lookup("http-addr"))
}
