package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the account schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			migrations := a.db.MigrationManager()
			if err := migrations.MigrateAll(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			version, err := migrations.GetCurrentVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema is at version %s\n", version)
			return nil
		},
	}
}
