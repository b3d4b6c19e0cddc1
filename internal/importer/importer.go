// Package importer loads a Voyant strings CSV into locales, string units and
// approved translations.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Sagaustus/spyral-translation/internal/access"
	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"github.com/Sagaustus/spyral-translation/internal/l10n"
	"github.com/google/uuid"
)

// Options control one import run.
type Options struct {
	DryRun bool
	// Limit caps the number of valid rows processed. Negative means no limit.
	Limit int
	// Verbose receives one line per created or updated translation when set.
	Verbose io.Writer
}

// Counts summarizes an import run.
type Counts struct {
	RowsTotal     int
	RowsSkipped   int
	RowsProcessed int

	StringUnitsCreated int
	StringUnitsUpdated int

	LocalesCreated int
	LocalesUpdated int

	TranslationsCreated int
	TranslationsUpdated int
}

// Summary renders the counters one per line.
func (c *Counts) Summary() string {
	return strings.Join([]string{
		"Import summary:",
		fmt.Sprintf("- rows_total: %d", c.RowsTotal),
		fmt.Sprintf("- rows_skipped: %d", c.RowsSkipped),
		fmt.Sprintf("- rows_processed: %d", c.RowsProcessed),
		fmt.Sprintf("- locales_created: %d", c.LocalesCreated),
		fmt.Sprintf("- locales_updated: %d", c.LocalesUpdated),
		fmt.Sprintf("- stringunits_created: %d", c.StringUnitsCreated),
		fmt.Sprintf("- stringunits_updated: %d", c.StringUnitsUpdated),
		fmt.Sprintf("- translations_created: %d", c.TranslationsCreated),
		fmt.Sprintf("- translations_updated: %d", c.TranslationsUpdated),
	}, "\n")
}

var errDryRun = errors.New("dry run")

// Importer writes through the l10n service so every row gets the same hash
// and flag recomputation as an interactive edit.
type Importer struct {
	repo dependency.Repository
}

func New(repo dependency.Repository) *Importer {
	return &Importer{repo: repo}
}

// ImportFile imports the CSV at path.
func (im *Importer) ImportFile(ctx context.Context, path string, opts Options) (*Counts, error) {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return nil, gerr.FailedPrecondition(fmt.Sprintf("CSV file not found: %s", path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open csv: %w", err)
	}
	defer f.Close()
	return im.Import(ctx, f, opts)
}

type columns struct {
	location int
	id       int
	en       int
	est      int
	// locales holds the index and header of every translation column.
	locales []localeColumn
}

type localeColumn struct {
	index  int
	header string
}

// resolveColumns finds the required columns case-insensitively. The English
// column is either "en" or a header ending in "(en)".
func resolveColumns(header []string) (*columns, error) {
	byLower := make(map[string]int, len(header))
	for i, h := range header {
		byLower[strings.ToLower(h)] = i
	}

	cols := &columns{en: -1}
	var ok bool
	if cols.location, ok = byLower["location"]; !ok {
		return nil, gerr.FailedPrecondition("CSV missing required columns: Location, ID, est")
	}
	if cols.id, ok = byLower["id"]; !ok {
		return nil, gerr.FailedPrecondition("CSV missing required columns: Location, ID, est")
	}
	if cols.est, ok = byLower["est"]; !ok {
		return nil, gerr.FailedPrecondition("CSV missing required columns: Location, ID, est")
	}
	if i, ok := byLower["en"]; ok {
		cols.en = i
	} else {
		for i, h := range header {
			if strings.ToLower(headerCode(h)) == "en" {
				cols.en = i
				break
			}
		}
	}
	if cols.en < 0 {
		return nil, gerr.FailedPrecondition("CSV missing required English column: expected 'en' or a header like 'English (en)'")
	}

	for i, h := range header {
		if h == "" || i == cols.location || i == cols.id || i == cols.en || i == cols.est {
			continue
		}
		cols.locales = append(cols.locales, localeColumn{index: i, header: h})
	}
	return cols, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func stripTrailingNewlines(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// Import reads a Voyant CSV from r. The whole run is one transaction; a dry
// run rolls it back after counting.
func (im *Importer) Import(ctx context.Context, r io.Reader, opts Options) (*Counts, error) {
	runId := uuid.New().String()
	cr := csv.NewReader(r)
	// Stray quotes inside unquoted cells are kept as text. The header fixes
	// the field count so rows with extra cells surface as parse errors.
	cr.LazyQuotes = true
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, gerr.FailedPrecondition("CSV has no header row")
	}
	if err != nil {
		return nil, gerr.FailedPrecondition(fmt.Sprintf("can't read CSV header: %v", err))
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	// Rows are read up front so a retried transaction sees the same input.
	rows, malformed, err := readRows(ctx, cr, len(header), runId)
	if err != nil {
		return nil, err
	}

	slog.Default().InfoContext(ctx, "csv import started",
		slog.String("run_id", runId),
		slog.Int("rows", len(rows)),
		slog.Int("locale_columns", len(cols.locales)),
		slog.Bool("dry_run", opts.DryRun),
	)

	var counts *Counts
	err = im.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		counts = &Counts{RowsTotal: malformed, RowsSkipped: malformed}
		return im.importRows(ctx, rep, cols, rows, opts, counts)
	})
	if err != nil && !errors.Is(err, errDryRun) {
		slog.Default().ErrorContext(ctx, "csv import failed",
			slog.String("run_id", runId),
			slog.String("err", err.Error()),
		)
		return nil, err
	}

	if !opts.DryRun {
		if err := l10n.New(im.repo).RefreshLocaleCache(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't refresh locale cache after import",
				slog.String("run_id", runId),
				slog.String("err", err.Error()),
			)
		}
	}

	slog.Default().InfoContext(ctx, "csv import finished",
		slog.String("run_id", runId),
		slog.Int("rows_processed", counts.RowsProcessed),
		slog.Int("translations_created", counts.TranslationsCreated),
		slog.Int("translations_updated", counts.TranslationsUpdated),
	)
	return counts, nil
}

// readRows collects the data rows. A malformed row is logged and counted
// rather than failing the whole file; short rows are kept and padded by cell.
func readRows(ctx context.Context, cr *csv.Reader, width int, runId string) ([][]string, int, error) {
	var (
		rows      [][]string
		malformed int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, malformed, nil
		}
		var pe *csv.ParseError
		switch {
		case err == nil:
		case errors.Is(err, csv.ErrFieldCount) && len(rec) < width:
		case errors.As(err, &pe):
			malformed++
			slog.Default().WarnContext(ctx, "skipping malformed csv row",
				slog.String("run_id", runId),
				slog.Int("line", pe.StartLine),
				slog.String("err", pe.Err.Error()),
			)
			continue
		default:
			return nil, 0, gerr.FailedPrecondition(fmt.Sprintf("can't parse CSV: %v", err))
		}
		rows = append(rows, rec)
	}
}

func (im *Importer) importRows(ctx context.Context, rep dependency.Repository, cols *columns, rows [][]string, opts Options, c *Counts) error {
	svc := l10n.New(rep)
	system := access.System()

	locales := make([]*entity.Locale, len(cols.locales))
	for i, lc := range cols.locales {
		l, err := upsertLocale(ctx, rep, headerCode(lc.header), c)
		if err != nil {
			return err
		}
		locales[i] = l
	}

	for _, row := range rows {
		c.RowsTotal++

		location := strings.TrimSpace(cell(row, cols.location))
		messageId := strings.TrimSpace(cell(row, cols.id))
		if location == "" || messageId == "" {
			c.RowsSkipped++
			continue
		}
		if opts.Limit >= 0 && c.RowsProcessed >= opts.Limit {
			break
		}

		res, err := svc.SaveStringUnit(ctx, system, &entity.StringUnitInsert{
			Location:        location,
			MessageId:       messageId,
			SourceText:      stripTrailingNewlines(cell(row, cols.en)),
			SourceUpdatedOn: cell(row, cols.est),
		})
		if err != nil {
			return fmt.Errorf("can't save string unit %s::%s: %w", location, messageId, err)
		}
		switch {
		case res.Created:
			c.StringUnitsCreated++
		case res.Updated:
			c.StringUnitsUpdated++
		}

		for i, lc := range cols.locales {
			text := stripTrailingNewlines(cell(row, lc.index))
			if strings.TrimSpace(text) == "" {
				continue
			}
			l := locales[i]
			ir, err := svc.ImportTranslation(ctx, res.StringUnit, l.Id, text)
			if err != nil {
				return fmt.Errorf("can't import %s %s::%s: %w", l.Code, location, messageId, err)
			}
			switch {
			case ir.Created:
				c.TranslationsCreated++
				im.verbose(opts, "[create] %s %s::%s", l.Code, location, messageId)
			case ir.Updated:
				c.TranslationsUpdated++
				im.verbose(opts, "[update] %s %s::%s", l.Code, location, messageId)
			}
		}
		c.RowsProcessed++
	}

	if opts.DryRun {
		return errDryRun
	}
	return nil
}

func (im *Importer) verbose(opts Options, format string, args ...any) {
	if opts.Verbose == nil {
		return
	}
	fmt.Fprintf(opts.Verbose, format+"\n", args...)
}
