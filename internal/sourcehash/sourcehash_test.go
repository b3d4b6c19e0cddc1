package sourcehash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestCompute(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		// sha256 of ""
		assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Compute(""))
	})

	t.Run("fixed length hex", func(t *testing.T) {
		h := Compute("Hello {0}")
		assert.Len(t, h, 64)
		assert.Regexp(t, "^[0-9a-f]{64}$", h)
	})

	t.Run("whitespace is trimmed", func(t *testing.T) {
		assert.Equal(t, Compute("Hello"), Compute("  Hello\n\t"))
		assert.Equal(t, Compute(""), Compute("   "))
	})

	t.Run("inner whitespace is significant", func(t *testing.T) {
		assert.NotEqual(t, Compute("Hello world"), Compute("Hello  world"))
	})

	t.Run("composition invariant", func(t *testing.T) {
		decomposed := "Cafe\u0301"
		composed := "Caf\u00e9"
		assert.Equal(t, Compute(composed), Compute(decomposed))
	})

	t.Run("normalization idempotent", func(t *testing.T) {
		for _, text := range []string{"", " a ", "e\u0301te\u0301", "\u212b", "\u1e9b\u0323 ", "<b>Hi</b>"} {
			assert.Equal(t, Compute(text), Compute(norm.NFC.String(text)), text)
			assert.Equal(t, Compute(text), Compute(Normalize(text)), text)
		}
	})
}
