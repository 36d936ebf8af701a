package main

import (
	"github.com/deppfellow/portfolio-api/internal/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.log
			return database.Migrate(cmd.Context(), &log, database.DSN(a.cfg.Database))
		},
	}
}
