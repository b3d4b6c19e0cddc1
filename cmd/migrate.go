package main

import (
	"context"
	"fmt"

	"github.com/Sagaustus/spyral-translation/internal/store"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.PersistentFlags().IntVar(&max, "max", 0, "maximum number of migrations to apply (0 = all)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				n, err := store.MigrateUp(context.Background(), cfg.DB, max)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s).\n", n)
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back applied migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				n, err := store.MigrateDown(context.Background(), cfg.DB, max)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s).\n", n)
				return nil
			},
		},
	)
	return cmd
}
