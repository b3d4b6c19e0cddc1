package main

import (
	"context"
	"fmt"

	"github.com/Sagaustus/spyral-translation/internal/l10n"
	"github.com/Sagaustus/spyral-translation/internal/presets"
	"github.com/spf13/cobra"
)

func seedLocalesCmd() *cobra.Command {
	var (
		preset string
		enable bool
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "seed-locales",
		Short: "Create or update locales from a curated preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			res, err := presets.Seed(ctx, db, preset, enable, dryRun)
			if err != nil {
				return err
			}
			if !dryRun {
				if err := l10n.New(db).RefreshLocaleCache(ctx); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
			return nil
		},
	}
	cmd.Flags().StringVar(&preset, "preset", presets.GlobalPlusAfricaIndiaChinese, "preset name")
	cmd.Flags().BoolVar(&enable, "enable", false, "enable every seeded locale")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing them")
	return cmd
}
