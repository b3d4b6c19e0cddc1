// Package presets seeds curated locale sets.
package presets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
)

// GlobalPlusAfricaIndiaChinese is the only supported preset.
const GlobalPlusAfricaIndiaChinese = "global_plus_africa_india_chinese"

// LocaleSeed is one curated locale.
type LocaleSeed struct {
	Code   string
	Bcp47  string
	Name   string
	Script string
	IsRtl  bool
}

var presets = map[string][]LocaleSeed{
	GlobalPlusAfricaIndiaChinese: {
		// Chinese
		{Code: "zh-hans", Bcp47: "zh-Hans", Name: "Chinese (Simplified)", Script: "Hans"},
		{Code: "zh-hant", Bcp47: "zh-Hant", Name: "Chinese (Traditional)", Script: "Hant"},
		// India
		{Code: "ta", Bcp47: "ta", Name: "Tamil", Script: "Tamil"},
		{Code: "te", Bcp47: "te", Name: "Telugu", Script: "Telu"},
		{Code: "mr", Bcp47: "mr", Name: "Marathi", Script: "Deva"},
		{Code: "pa", Bcp47: "pa", Name: "Punjabi", Script: "Guru"},
		{Code: "kn", Bcp47: "kn", Name: "Kannada", Script: "Knda"},
		{Code: "ml", Bcp47: "ml", Name: "Malayalam", Script: "Mlym"},
		{Code: "or", Bcp47: "or", Name: "Odia", Script: "Orya"},
		{Code: "as", Bcp47: "as", Name: "Assamese", Script: "Beng"},
		// Africa
		{Code: "sw", Bcp47: "sw", Name: "Swahili", Script: "Latn"},
		{Code: "am", Bcp47: "am", Name: "Amharic", Script: "Ethi"},
		{Code: "ha", Bcp47: "ha", Name: "Hausa", Script: "Latn"},
		{Code: "yo", Bcp47: "yo", Name: "Yoruba", Script: "Latn"},
		{Code: "ig", Bcp47: "ig", Name: "Igbo", Script: "Latn"},
		{Code: "zu", Bcp47: "zu", Name: "isiZulu", Script: "Latn"},
		{Code: "xh", Bcp47: "xh", Name: "isiXhosa", Script: "Latn"},
		{Code: "so", Bcp47: "so", Name: "Somali", Script: "Latn"},
		{Code: "ti", Bcp47: "ti", Name: "Tigrinya", Script: "Ethi"},
		{Code: "rw", Bcp47: "rw", Name: "Kinyarwanda", Script: "Latn"},
		{Code: "sn", Bcp47: "sn", Name: "Shona", Script: "Latn"},
	},
}

// Seeds returns the locales of a preset.
func Seeds(preset string) ([]LocaleSeed, error) {
	seeds, ok := presets[strings.TrimSpace(preset)]
	if !ok {
		return nil, gerr.InvalidArgument(fmt.Sprintf("unsupported preset: %s, only %q is allowed", preset, GlobalPlusAfricaIndiaChinese))
	}
	return seeds, nil
}

// Result counts what a seed run did.
type Result struct {
	Created      int
	Updated      int
	Skipped      int
	CreatedCodes []string
	DryRun       bool
}

const previewCodes = 12

// Summary renders the counters and a preview of the created codes.
func (r *Result) Summary() string {
	preview := strings.Join(r.CreatedCodes[:min(len(r.CreatedCodes), previewCodes)], ", ")
	if n := len(r.CreatedCodes) - previewCodes; n > 0 {
		preview += fmt.Sprintf(" …(+%d more)", n)
	}
	lines := []string{
		"Seed summary:",
		fmt.Sprintf("- created_count: %d", r.Created),
		fmt.Sprintf("- updated_count: %d", r.Updated),
		fmt.Sprintf("- skipped_count: %d", r.Skipped),
		fmt.Sprintf("- created_codes: %s", preview),
	}
	if r.DryRun {
		lines = append(lines, "(dry-run: no changes were written)")
	}
	return strings.Join(lines, "\n")
}

var errDryRun = errors.New("dry run")

// Seed creates missing locales of the preset and aligns existing ones with
// it. legacy_column is never written. With dryRun the transaction is rolled
// back after counting.
func Seed(ctx context.Context, repo dependency.Repository, preset string, enable, dryRun bool) (*Result, error) {
	seeds, err := Seeds(preset)
	if err != nil {
		return nil, err
	}

	var res *Result
	err = repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		res = &Result{DryRun: dryRun}
		for _, seed := range seeds {
			if err := seedOne(ctx, rep, seed, enable, res); err != nil {
				return err
			}
		}
		if dryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return nil, err
	}
	return res, nil
}

func seedOne(ctx context.Context, rep dependency.Repository, seed LocaleSeed, enable bool, res *Result) error {
	script := entity.NullString(seed.Script)

	l, err := rep.Locales().GetLocaleByCode(ctx, seed.Code)
	if errors.Is(err, gerr.LocaleNotFound) {
		_, err := rep.Locales().AddLocale(ctx, &entity.LocaleInsert{
			Code:    seed.Code,
			Bcp47:   seed.Bcp47,
			Name:    seed.Name,
			Script:  script,
			IsRtl:   seed.IsRtl,
			Enabled: enable,
		})
		if err != nil {
			return err
		}
		res.Created++
		res.CreatedCodes = append(res.CreatedCodes, seed.Code)
		return nil
	}
	if err != nil {
		return err
	}

	upd := l.LocaleInsert
	upd.Bcp47 = seed.Bcp47
	upd.Name = seed.Name
	upd.Script = script
	upd.IsRtl = seed.IsRtl
	upd.Enabled = enable
	if upd == l.LocaleInsert {
		res.Skipped++
		return nil
	}
	if err := rep.Locales().UpdateLocale(ctx, l.Id, &upd); err != nil {
		return err
	}
	res.Updated++
	return nil
}
