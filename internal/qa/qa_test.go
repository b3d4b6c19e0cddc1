package qa

import (
	"encoding/json"
	"testing"

	"github.com/Sagaustus/spyral-translation/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(flags entity.QAFlags) []entity.QACode {
	out := make([]entity.QACode, 0, len(flags))
	for _, f := range flags {
		out = append(out, f.Code)
	}
	return out
}

func TestExtractPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"curly positional", "Hello {0}", []string{"{0}"}},
		{"curly named", "{count} files in {dir}", []string{"{count}", "{dir}"}},
		{"percent named", "Hi %(name)s, you have %(n)d", []string{"%(name)s", "%(n)d"}},
		{"percent positional", "%1$s and %2$d", []string{"%1$s", "%2$d"}},
		{"bare percent", "%s of %d", []string{"%s", "%d"}},
		{"escaped percent", "100%% done", nil},
		{"escaped percent before conversion char", "literal %%s", nil},
		{"escaped percent after digits", "100%%s", nil},
		{"unsupported conversion", "%(name)r %q", nil},
		{"nested braces not parsed as outer token", "{{0}}", []string{"{0}"}},
		{"empty braces", "{}", nil},
		{"duplicates collapse", "{0} {0}", []string{"{0}"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPlaceholders(tt.text)
			assert.Len(t, got, len(tt.want))
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestExtractHTMLTags(t *testing.T) {
	got := ExtractHTMLTags(`<B>bold</b> <a href="/x">link</A> <br> <em>x</em> <embed> < span class="c" >`)
	assert.Equal(t, map[string]int{
		"b_open":    1,
		"b_close":   1,
		"a_open":    1,
		"a_close":   1,
		"em_open":   1,
		"em_close":  1,
		"span_open": 1,
	}, got)

	assert.Empty(t, ExtractHTMLTags(""))
	assert.Empty(t, ExtractHTMLTags("<div><p>not tracked</p></div>"))
}

func TestComputeFlags_MissingPlaceholder(t *testing.T) {
	flags := ComputeFlags("Hello {0}", "Bonjour")

	f, ok := flags.Get(entity.QAMissingPlaceholder)
	require.True(t, ok)
	assert.Equal(t, []string{"{0}"}, f.Details["missing"])
	assert.False(t, flags.Has(entity.QAExtraPlaceholder))
}

func TestComputeFlags_ExtraPlaceholder(t *testing.T) {
	flags := ComputeFlags("Hello", "Bonjour {name} %s")

	f, ok := flags.Get(entity.QAExtraPlaceholder)
	require.True(t, ok)
	assert.Equal(t, []string{"%s", "{name}"}, f.Details["extra"])
}

func TestComputeFlags_UnbalancedBraces(t *testing.T) {
	flags := ComputeFlags("X", "{")

	f, ok := flags.Get(entity.QAUnbalancedBraces)
	require.True(t, ok)
	assert.Equal(t, 1, f.Details["open"])
	assert.Equal(t, 0, f.Details["close"])
}

func TestComputeFlags_HTMLTagMismatch(t *testing.T) {
	flags := ComputeFlags("<b>Hi</b>", "<b>Salut")

	f, ok := flags.Get(entity.QAHTMLTagMismatch)
	require.True(t, ok)
	assert.Equal(t, map[string]entity.TagCount{
		"b_close": {Source: 1, Target: 0},
	}, f.Details["mismatches"])
}

func TestComputeFlags_EmptyTranslation(t *testing.T) {
	assert.True(t, ComputeFlags("Bye", "  ").Has(entity.QAEmptyTranslation))
	assert.False(t, ComputeFlags("   ", "").Has(entity.QAEmptyTranslation))
	assert.False(t, ComputeFlags("Bye", "Adios").Has(entity.QAEmptyTranslation))
}

func TestComputeFlags_Order(t *testing.T) {
	flags := ComputeFlags("<b>Hello {0}</b>", "<i>{x} {")
	assert.Equal(t, []entity.QACode{
		entity.QAMissingPlaceholder,
		entity.QAExtraPlaceholder,
		entity.QAUnbalancedBraces,
		entity.QAHTMLTagMismatch,
	}, codes(flags))

	flags = ComputeFlags("Hello {0}", "")
	assert.Equal(t, []entity.QACode{
		entity.QAMissingPlaceholder,
		entity.QAEmptyTranslation,
	}, codes(flags))
}

func TestComputeFlags_EscapedPercentIsLiteral(t *testing.T) {
	assert.Empty(t, ComputeFlags("Save 100%%s", "Économisez 100%%"))
	assert.Empty(t, ComputeFlags("Save 100%%", "Économisez 100%%s"))
}

func TestComputeFlags_Clean(t *testing.T) {
	flags := ComputeFlags("Hello <b>%(name)s</b>, {0} new", "Bonjour <b>%(name)s</b>, {0} nouveaux")
	assert.Empty(t, flags)

	v, err := flags.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestComputeFlags_PayloadShape(t *testing.T) {
	flags := ComputeFlags("Hello {0}", "")
	v, err := flags.Value()
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(v.(string)), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "missing_placeholder", decoded[0]["code"])
	assert.NotEmpty(t, decoded[0]["message"])
	assert.Contains(t, decoded[0], "details")
	assert.Equal(t, "empty_translation", decoded[1]["code"])
	assert.NotContains(t, decoded[1], "details")

	var back entity.QAFlags
	require.NoError(t, back.Scan([]byte(v.(string))))
	assert.Len(t, back, 2)
	assert.True(t, back.Has(entity.QAEmptyTranslation))
}
