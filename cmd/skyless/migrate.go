package main

import (
	"github.com/spf13/cobra"

	"github.com/deppfellow/skyless/internal/database"
)

func newMigrateCommand() *cobra.Command {
	var target int32

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		Long:  "Migrate to the latest schema version, or to --target when it is zero or greater.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			return database.Migrate(cmd.Context(), &log, cfg, target)
		},
	}

	cmd.Flags().Int32Var(&target, "target", -1, "schema version to migrate to (-1 for latest)")

	return cmd
}
