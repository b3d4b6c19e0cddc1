// Package qa computes quality warnings for a candidate translation
// against its source string. It is pure: no persistence, no state.
package qa

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Sagaustus/spyral-translation/internal/entity"
)

var (
	// percentToken matches printf-style tokens. %% is listed first so an
	// escaped percent is consumed before it can start a placeholder.
	percentToken = regexp.MustCompile(`%%|%\([A-Za-z_][A-Za-z0-9_]*\)[sdfox]|%\d+\$[sdfox]|%[sdfox]`)
	// curlyToken matches {0}, {name}; nested braces are not supported.
	curlyToken = regexp.MustCompile(`\{[^{}]+\}`)
	// inlineTag matches open and close tags from a tight allow-list.
	inlineTag = regexp.MustCompile(`(?i)<\s*(/)?\s*(b|i|strong|em|span|a)\b[^>]*>`)
)

const (
	msgMissingPlaceholder = "Translation is missing placeholder(s) present in the source."
	msgExtraPlaceholder   = "Translation contains placeholder(s) not present in the source."
	msgUnbalancedBraces   = "Translation has unbalanced curly braces."
	msgHTMLTagMismatch    = "Translation HTML tag counts do not match the source."
	msgEmptyTranslation   = "Translation is empty while the source is not."
)

// ExtractPlaceholders returns the set of placeholder tokens found in text.
func ExtractPlaceholders(text string) map[string]struct{} {
	found := make(map[string]struct{})
	if text == "" {
		return found
	}
	for _, tok := range percentToken.FindAllString(text, -1) {
		if tok == "%%" {
			continue
		}
		found[tok] = struct{}{}
	}
	for _, tok := range curlyToken.FindAllString(text, -1) {
		found[tok] = struct{}{}
	}
	return found
}

// ExtractHTMLTags counts allow-listed inline tags keyed by "<tag>_open" and "<tag>_close".
func ExtractHTMLTags(text string) map[string]int {
	counts := make(map[string]int)
	if text == "" {
		return counts
	}
	for _, m := range inlineTag.FindAllStringSubmatch(text, -1) {
		kind := "open"
		if m[1] != "" {
			kind = "close"
		}
		counts[strings.ToLower(m[2])+"_"+kind]++
	}
	return counts
}

// ComputeFlags returns the warnings for target measured against source,
// in a fixed order: missing_placeholder, extra_placeholder,
// unbalanced_braces, html_tag_mismatch, empty_translation.
// empty_translation is unconditional here; gating by status is up to the caller.
func ComputeFlags(source, target string) entity.QAFlags {
	flags := entity.QAFlags{}

	srcPlaceholders := ExtractPlaceholders(source)
	tgtPlaceholders := ExtractPlaceholders(target)

	if missing := difference(srcPlaceholders, tgtPlaceholders); len(missing) > 0 {
		flags = append(flags, entity.QAFlag{
			Code:    entity.QAMissingPlaceholder,
			Message: msgMissingPlaceholder,
			Details: map[string]any{"missing": missing},
		})
	}

	if extra := difference(tgtPlaceholders, srcPlaceholders); len(extra) > 0 {
		flags = append(flags, entity.QAFlag{
			Code:    entity.QAExtraPlaceholder,
			Message: msgExtraPlaceholder,
			Details: map[string]any{"extra": extra},
		})
	}

	openCount, closeCount := strings.Count(target, "{"), strings.Count(target, "}")
	if openCount != closeCount {
		flags = append(flags, entity.QAFlag{
			Code:    entity.QAUnbalancedBraces,
			Message: msgUnbalancedBraces,
			Details: map[string]any{"open": openCount, "close": closeCount},
		})
	}

	if mismatches := tagMismatches(ExtractHTMLTags(source), ExtractHTMLTags(target)); len(mismatches) > 0 {
		flags = append(flags, entity.QAFlag{
			Code:    entity.QAHTMLTagMismatch,
			Message: msgHTMLTagMismatch,
			Details: map[string]any{"mismatches": mismatches},
		})
	}

	if strings.TrimSpace(source) != "" && strings.TrimSpace(target) == "" {
		flags = append(flags, entity.QAFlag{
			Code:    entity.QAEmptyTranslation,
			Message: msgEmptyTranslation,
		})
	}

	return flags
}

// difference returns the sorted members of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for tok := range a {
		if _, ok := b[tok]; !ok {
			out = append(out, tok)
		}
	}
	sort.Strings(out)
	return out
}

func tagMismatches(src, tgt map[string]int) map[string]entity.TagCount {
	keys := make(map[string]struct{}, len(src)+len(tgt))
	for k := range src {
		keys[k] = struct{}{}
	}
	for k := range tgt {
		keys[k] = struct{}{}
	}
	mismatches := make(map[string]entity.TagCount)
	for k := range keys {
		if src[k] != tgt[k] {
			mismatches[k] = entity.TagCount{Source: src[k], Target: tgt[k]}
		}
	}
	return mismatches
}
