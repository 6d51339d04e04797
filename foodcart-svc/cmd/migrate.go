package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeps(settings)
		defer d.Close()

		if err := d.repo.EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		log.Println("[foodcart-svc] schema is up to date")
		return nil
	},
}
