// Package exporter writes approved translations of a locale to the uniform
// voyant_<code>.csv schema.
package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	StatusApproved = "APPROVED"
	StatusMissing  = "MISSING"

	timestampLayout = "2006-01-02T15:04:05.999999-07:00"
)

var header = []string{
	"location",
	"message_id",
	"source_en",
	"target_locale",
	"translation",
	"status",
	"source_hash",
	"translation_updated_at",
}

// Options shape the exported rows.
type Options struct {
	OutDir               string
	IncludeSourceUpdated bool
	MissingMarker        string
	OnlyMissing          bool
}

// Stats describes one exported file. Counters cover every string unit, also
// the ones left out by OnlyMissing.
type Stats struct {
	LocaleCode string
	Total      int
	Approved   int
	Missing    int
	Path       string
}

// Coverage is the approved share in percent, rounded to two places.
func (s *Stats) Coverage() decimal.Decimal {
	if s.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(s.Approved)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(s.Total))).
		Round(2)
}

func (s *Stats) Summary() string {
	return strings.Join([]string{
		"Export summary:",
		fmt.Sprintf("- total_string_units: %d", s.Total),
		fmt.Sprintf("- approved_count: %d", s.Approved),
		fmt.Sprintf("- missing_count: %d", s.Missing),
		fmt.Sprintf("- coverage: %s%%", s.Coverage().StringFixed(2)),
		fmt.Sprintf("- output_path: %s", s.Path),
	}, "\n")
}

type Exporter struct {
	repo dependency.Repository
}

func New(repo dependency.Repository) *Exporter {
	return &Exporter{repo: repo}
}

// FileName is the export file of a locale.
func FileName(code string) string {
	return fmt.Sprintf("voyant_%s.csv", code)
}

// ExportLocale writes one locale into opts.OutDir, creating it when missing.
func (e *Exporter) ExportLocale(ctx context.Context, code string, opts Options) (*Stats, error) {
	l, err := e.repo.Locales().GetLocaleByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("locale not found: %s: %w", code, err)
	}
	if err := ensureDir(opts.OutDir); err != nil {
		return nil, err
	}
	units, err := e.repo.StringUnits().ListStringUnits(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't list string units: %w", err)
	}
	return e.exportLocale(ctx, l, units, opts)
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return gerr.FailedPrecondition(fmt.Sprintf("could not create output directory: %s: %v", dir, err))
	}
	return nil
}

func (e *Exporter) exportLocale(ctx context.Context, l *entity.Locale, units []entity.StringUnit, opts Options) (*Stats, error) {
	rows, err := e.repo.Translations().ListApprovedByLocale(ctx, l.Id)
	if err != nil {
		return nil, fmt.Errorf("can't list translations of %s: %w", l.Code, err)
	}
	bySu := make(map[int]entity.ApprovedRow, len(rows))
	for _, r := range rows {
		bySu[r.StringUnitId] = r
	}

	stats := &Stats{
		LocaleCode: l.Code,
		Path:       filepath.Join(opts.OutDir, FileName(l.Code)),
	}
	f, err := os.Create(stats.Path)
	if err != nil {
		return nil, gerr.FailedPrecondition(fmt.Sprintf("can't create %s: %v", stats.Path, err))
	}
	defer f.Close()

	w := csv.NewWriter(f)
	h := header
	if opts.IncludeSourceUpdated {
		h = append(append([]string{}, header...), "source_updated_on")
	}
	if err := w.Write(h); err != nil {
		return nil, fmt.Errorf("can't write header: %w", err)
	}

	for _, su := range units {
		stats.Total++
		row := approvedRow(su, bySu[su.Id], l.Code, opts.MissingMarker)
		if row[5] == StatusApproved {
			stats.Approved++
		} else {
			stats.Missing++
		}
		if opts.OnlyMissing && row[5] != StatusMissing {
			continue
		}
		if opts.IncludeSourceUpdated {
			row = append(row, su.SourceUpdatedOn)
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("can't write row %s: %w", su.String(), err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("can't flush %s: %w", stats.Path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("can't close %s: %w", stats.Path, err)
	}
	return stats, nil
}

// approvedRow builds the CSV row of a unit. A translation counts as approved
// when its approved text is non-blank, whatever its status.
func approvedRow(su entity.StringUnit, tr entity.ApprovedRow, code, missingMarker string) []string {
	status := StatusMissing
	text := missingMarker
	updatedAt := ""
	if strings.TrimSpace(tr.ApprovedText.String) != "" {
		status = StatusApproved
		text = tr.ApprovedText.String
		if !tr.UpdatedAt.IsZero() {
			updatedAt = tr.UpdatedAt.UTC().Format(timestampLayout)
		}
	}
	return []string{
		su.Location,
		su.MessageId,
		su.SourceText,
		code,
		text,
		status,
		su.SourceHash,
		updatedAt,
	}
}

// ParseLocaleList splits a comma separated list of locale codes.
func ParseLocaleList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
