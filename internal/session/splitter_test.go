package session

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("short message is not split", func(t *testing.T) {
		assert.Nil(t, Split("fits in one post", MaxPostLength))
	})

	t.Run("message exactly at the limit is not split", func(t *testing.T) {
		assert.Nil(t, Split(strings.Repeat("x ", MaxPostLength/2), MaxPostLength))
	})

	t.Run("long message becomes numbered parts within the limit", func(t *testing.T) {
		text := strings.TrimSpace(strings.Repeat("seven chars ", 60)) // ~720 chars

		parts := Split(text, MaxPostLength)
		require.NotEmpty(t, parts)
		assert.Greater(t, len(parts), 1)

		for i, part := range parts {
			assert.LessOrEqual(t, utf8.RuneCountInString(part), MaxPostLength)
			assert.True(t, strings.HasSuffix(part, fmt.Sprintf("(%d/%d)", i+1, len(parts))),
				"part %d should carry its indicator: %q", i+1, part)
		}
	})

	t.Run("splits at word boundaries", func(t *testing.T) {
		words := make([]string, 0, 40)
		for i := 0; i < 40; i++ {
			words = append(words, fmt.Sprintf("word%02d", i))
		}
		text := strings.Join(words, " ")

		parts := Split(text, 80)
		require.NotEmpty(t, parts)

		var rejoined []string
		for i, part := range parts {
			part = strings.TrimSuffix(part, fmt.Sprintf(" (%d/%d)", i+1, len(parts)))
			rejoined = append(rejoined, strings.Fields(part)...)
		}
		assert.Equal(t, words, rejoined, "no word should be cut in half")
	})

	t.Run("parts stay within the limit past one hundred parts", func(t *testing.T) {
		// Three-digit indicators like " (100/118)" are wider than
		// two-digit ones; the budget has to account for them.
		text := strings.TrimSpace(strings.Repeat("abcdefg ", 4000)) // ~32,000 runes

		parts := Split(text, MaxPostLength)
		require.GreaterOrEqual(t, len(parts), 100)

		for i, part := range parts {
			assert.LessOrEqual(t, utf8.RuneCountInString(part), MaxPostLength,
				"part %d exceeds the limit: %q", i+1, part)
			assert.True(t, strings.HasSuffix(part, fmt.Sprintf("(%d/%d)", i+1, len(parts))))
		}
	})

	t.Run("limit too small for an indicator returns the text unsplit", func(t *testing.T) {
		text := "does not fit but cannot be split"
		for _, limit := range []int{1, 5, 6} {
			parts := Split(text, limit)
			assert.Equal(t, []string{text}, parts, "limit %d", limit)
		}
	})

	t.Run("a single oversized word is split by runes", func(t *testing.T) {
		parts := Split(strings.Repeat("a", 500), 100)
		require.NotEmpty(t, parts)
		for _, part := range parts {
			assert.LessOrEqual(t, utf8.RuneCountInString(part), 100)
		}
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		text := strings.TrimSpace(strings.Repeat("héllo wörld ", 50))

		parts := Split(text, MaxPostLength)
		require.NotEmpty(t, parts)
		for _, part := range parts {
			assert.LessOrEqual(t, utf8.RuneCountInString(part), MaxPostLength)
		}
	})
}
