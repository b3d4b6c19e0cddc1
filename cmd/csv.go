package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Sagaustus/spyral-translation/internal/exporter"
	"github.com/Sagaustus/spyral-translation/internal/importer"
	"github.com/spf13/cobra"
)

func importCSVCmd() *cobra.Command {
	var (
		path    string
		dryRun  bool
		limit   int
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "import-csv",
		Short: "Import string units and approved translations from a Voyant CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			_, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			opts := importer.Options{DryRun: dryRun, Limit: limit}
			if verbose {
				opts.Verbose = cmd.OutOrStdout()
			}
			counts, err := importer.New(db).ImportFile(ctx, path, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), counts.Summary())
			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "(dry-run: no changes were written)")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "path to the CSV file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "roll back instead of committing")
	cmd.Flags().IntVar(&limit, "limit", -1, "process at most this many rows (negative = all)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print every created or updated translation")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

// exportFlags are shared by export-locale and export-all.
type exportFlags struct {
	out                  string
	includeSourceUpdated bool
	missingMarker        string
	onlyMissing          bool
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.out, "out", "", "output directory (defaults to export.out_dir)")
	cmd.Flags().BoolVar(&f.includeSourceUpdated, "include-source-updated", false, "append the source_updated_on column")
	cmd.Flags().StringVar(&f.missingMarker, "missing-marker", "", "text written for missing translations")
	cmd.Flags().BoolVar(&f.onlyMissing, "only-missing", false, "write only rows without an approved translation")
}

func (f *exportFlags) options(cmd *cobra.Command, outDir, missingMarker string) exporter.Options {
	opts := exporter.Options{
		OutDir:               outDir,
		IncludeSourceUpdated: f.includeSourceUpdated,
		MissingMarker:        missingMarker,
		OnlyMissing:          f.onlyMissing,
	}
	if f.out != "" {
		opts.OutDir = f.out
	}
	if cmd.Flags().Changed("missing-marker") {
		opts.MissingMarker = f.missingMarker
	}
	return opts
}

func exportLocaleCmd() *cobra.Command {
	var (
		locale string
		flags  exportFlags
	)
	cmd := &cobra.Command{
		Use:   "export-locale",
		Short: "Export approved translations of one locale to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			opts := flags.options(cmd, cfg.Export.OutDir, cfg.Export.MissingMarker)
			stats, err := exporter.New(db).ExportLocale(ctx, locale, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stats.Summary())
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "locale code to export")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("locale")
	return cmd
}

func exportAllCmd() *cobra.Command {
	var (
		locales string
		flags   exportFlags
	)
	cmd := &cobra.Command{
		Use:   "export-all",
		Short: "Export every enabled locale, or the listed ones, to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			opts := flags.options(cmd, cfg.Export.OutDir, cfg.Export.MissingMarker)
			res, err := exporter.New(db).ExportAll(ctx, exporter.ParseLocaleList(locales), opts, cfg.Export.Concurrency)
			printAll(cmd.OutOrStdout(), res)
			return err
		},
	}
	cmd.Flags().StringVar(&locales, "locales", "", "comma or space separated locale codes (default: all enabled)")
	flags.register(cmd)
	return cmd
}

func printAll(w io.Writer, res *exporter.AllResult) {
	if res == nil {
		return
	}
	for _, warn := range res.Warnings {
		fmt.Fprintln(w, "WARNING:", warn)
	}
	fmt.Fprintln(w, res.Summary())
}
