package importer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Sagaustus/spyral-translation/internal/dependency"
	"github.com/Sagaustus/spyral-translation/internal/entity"
	gerr "github.com/Sagaustus/spyral-translation/internal/errors"
	"golang.org/x/text/language"
)

var rtlColumns = map[string]bool{
	"ar": true,
	"fa": true,
	"ur": true,
	"he": true,
}

var localeNames = map[string]string{
	"en":      "English",
	"fr":      "French",
	"de":      "German",
	"es":      "Spanish",
	"pt":      "Portuguese",
	"it":      "Italian",
	"hi":      "Hindi",
	"yo":      "Yoruba",
	"ar":      "Arabic",
	"fa":      "Persian",
	"ur":      "Urdu",
	"he":      "Hebrew",
	"cs":      "Czech",
	"zh-hans": "Chinese (Simplified)",
}

var (
	headerCodeRe = regexp.MustCompile(`\(([^()]+)\)\s*$`)
	nonCodeRe    = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphensRe    = regexp.MustCompile(`-+`)
)

// headerCode extracts a locale code from a header such as "fr" or "French (fr)".
func headerCode(header string) string {
	raw := strings.TrimSpace(header)
	if m := headerCodeRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return raw
}

// NormalizeCode turns a legacy column name into a slug-like locale code.
func NormalizeCode(raw string) string {
	code := strings.ToLower(strings.TrimSpace(raw))
	code = strings.ReplaceAll(code, "_", "-")
	code = strings.ReplaceAll(code, " ", "-")
	code = nonCodeRe.ReplaceAllString(code, "-")
	code = hyphensRe.ReplaceAllString(code, "-")
	return strings.Trim(code, "-")
}

// localeDefaults derives the locale a legacy column maps to.
func localeDefaults(legacy string) (*entity.LocaleInsert, error) {
	lower := strings.ToLower(legacy)

	var code, bcp47 string
	switch lower {
	case "zh":
		code, bcp47 = "zh-hans", "zh-Hans"
	case "cz":
		code, bcp47 = "cs", "cs"
	default:
		code = NormalizeCode(legacy)
		if code == "" {
			return nil, gerr.FailedPrecondition(fmt.Sprintf("invalid locale column name: %q", legacy))
		}
		bcp47 = canonicalTag(code)
	}

	name, ok := localeNames[code]
	if !ok {
		name = strings.ToUpper(code)
	}

	return &entity.LocaleInsert{
		Code:         code,
		Bcp47:        bcp47,
		Name:         name,
		IsRtl:        rtlColumns[lower],
		Enabled:      true,
		LegacyColumn: entity.NullString(legacy),
	}, nil
}

// canonicalTag returns the canonical BCP-47 form of code, or code itself
// when it does not parse as a language tag.
func canonicalTag(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}

// upsertLocale creates the locale for a legacy column or backfills blank
// fields of an existing one. Manual edits are never overwritten.
func upsertLocale(ctx context.Context, rep dependency.Repository, legacyColumn string, c *Counts) (*entity.Locale, error) {
	legacy := strings.TrimSpace(legacyColumn)
	if legacy == "" {
		return nil, gerr.FailedPrecondition("empty locale column name in CSV header")
	}
	def, err := localeDefaults(legacy)
	if err != nil {
		return nil, err
	}

	l, err := rep.Locales().GetLocaleByCode(ctx, def.Code)
	if errors.Is(err, gerr.LocaleNotFound) {
		id, err := rep.Locales().AddLocale(ctx, def)
		if err != nil {
			return nil, fmt.Errorf("can't add locale %s: %w", def.Code, err)
		}
		c.LocalesCreated++
		return &entity.Locale{Id: id, LocaleInsert: *def}, nil
	}
	if err != nil {
		return nil, err
	}

	upd := l.LocaleInsert
	if strings.TrimSpace(upd.LegacyColumn.String) == "" {
		upd.LegacyColumn = def.LegacyColumn
	}
	if strings.TrimSpace(upd.Bcp47) == "" {
		upd.Bcp47 = def.Bcp47
	}
	if strings.TrimSpace(upd.Name) == "" || upd.Name == strings.ToUpper(upd.Code) {
		upd.Name = def.Name
	}
	if def.IsRtl {
		upd.IsRtl = true
	}
	if upd == l.LocaleInsert {
		return l, nil
	}
	if err := rep.Locales().UpdateLocale(ctx, l.Id, &upd); err != nil {
		return nil, fmt.Errorf("can't update locale %s: %w", l.Code, err)
	}
	c.LocalesUpdated++
	l.LocaleInsert = upd
	return l, nil
}
