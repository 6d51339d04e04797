package cmd

import (
	"log"

	"foodcart/foodcart-svc/internal/seed"

	"github.com/spf13/cobra"
)

var seedOpts seed.Options

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo restaurants, products and menus",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeps(settings)
		defer d.Close()

		if err := d.repo.EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		summary, err := seed.Run(cmd.Context(), d.repo, seedOpts)
		if err != nil {
			return err
		}
		log.Printf("[foodcart-svc] seeded %d categories, %d products, %d restaurants, %d menu items",
			summary.Categories, summary.Products, summary.Restaurants, summary.MenuItems)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedOpts.Restaurants, "restaurants", 5, "number of restaurants")
	seedCmd.Flags().IntVar(&seedOpts.Products, "products", 20, "number of products")
	seedCmd.Flags().Int64Var(&seedOpts.Seed, "seed", 42, "random seed")
}
