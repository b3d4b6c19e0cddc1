package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of locale files written in parallel.
const DefaultConcurrency = 4

// AllResult describes an export-all run.
type AllResult struct {
	OutDir  string
	Locales []*Stats
	// Warnings lists disabled locales exported because they were requested.
	Warnings []string
	// MissingRequested lists requested codes that match no locale.
	MissingRequested []string
}

func (r *AllResult) TotalApproved() int {
	n := 0
	for _, s := range r.Locales {
		n += s.Approved
	}
	return n
}

func (r *AllResult) TotalMissing() int {
	n := 0
	for _, s := range r.Locales {
		n += s.Missing
	}
	return n
}

func (r *AllResult) Summary() string {
	if len(r.Locales) == 0 {
		return "No locales to export."
	}
	lines := make([]string, 0, len(r.Locales)+5)
	for _, s := range r.Locales {
		lines = append(lines, fmt.Sprintf("%s: approved=%d missing=%d -> %s", s.LocaleCode, s.Approved, s.Missing, s.Path))
	}
	lines = append(lines,
		"Final summary:",
		fmt.Sprintf("- locales_exported: %d", len(r.Locales)),
		fmt.Sprintf("- total_approved: %d", r.TotalApproved()),
		fmt.Sprintf("- total_missing: %d", r.TotalMissing()),
		fmt.Sprintf("- output_directory: %s", r.OutDir),
	)
	return strings.Join(lines, "\n")
}

// ExportAll exports every enabled locale, or exactly the requested codes
// when codes is non-empty. Requested disabled locales are exported with a
// warning. Requested codes that match no locale do not stop the run but make
// it return an error once every file is written.
func (e *Exporter) ExportAll(ctx context.Context, codes []string, opts Options, concurrency int) (*AllResult, error) {
	runId := uuid.New().String()
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if err := ensureDir(opts.OutDir); err != nil {
		return nil, err
	}

	res := &AllResult{OutDir: opts.OutDir}
	locales, err := e.selectLocales(ctx, codes, res)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		slog.Default().WarnContext(ctx, w, slog.String("run_id", runId))
	}

	if len(locales) > 0 {
		units, err := e.repo.StringUnits().ListStringUnits(ctx)
		if err != nil {
			return nil, fmt.Errorf("can't list string units: %w", err)
		}

		res.Locales = make([]*Stats, len(locales))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i := range locales {
			i := i
			l := &locales[i]
			g.Go(func() error {
				s, err := e.exportLocale(gctx, l, units, opts)
				if err != nil {
					return err
				}
				res.Locales[i] = s
				slog.Default().InfoContext(gctx, "locale exported",
					slog.String("run_id", runId),
					slog.String("locale", l.Code),
					slog.Int("approved", s.Approved),
					slog.Int("missing", s.Missing),
					slog.String("coverage", s.Coverage().StringFixed(2)),
				)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if len(res.MissingRequested) > 0 {
		return res, gerr.FailedPrecondition(fmt.Sprintf("requested locales do not exist: %s", strings.Join(res.MissingRequested, ", ")))
	}
	return res, nil
}

// selectLocales returns the locales to export ordered by code.
func (e *Exporter) selectLocales(ctx context.Context, codes []string, res *AllResult) ([]entity.Locale, error) {
	if len(codes) == 0 {
		locales, err := e.repo.Locales().ListLocales(ctx, true)
		if err != nil {
			return nil, fmt.Errorf("can't list locales: %w", err)
		}
		return locales, nil
	}

	all, err := e.repo.Locales().ListLocales(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("can't list locales: %w", err)
	}
	byCode := make(map[string]entity.Locale, len(all))
	for _, l := range all {
		byCode[l.Code] = l
	}

	seen := make(map[string]bool, len(codes))
	var out []entity.Locale
	for _, c := range codes {
		if seen[c] {
			continue
		}
		seen[c] = true
		l, ok := byCode[c]
		if !ok {
			res.MissingRequested = append(res.MissingRequested, c)
			continue
		}
		if !l.Enabled {
			res.Warnings = append(res.Warnings, fmt.Sprintf("locale %s is disabled but will be exported because it was requested", l.Code))
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
