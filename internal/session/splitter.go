package session

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Split breaks a message that exceeds limit into numbered parts
// suitable for PostThread, splitting at word boundaries. Each part
// carries an " (i/n)" suffix and stays within limit. It returns nil
// when the message already fits in a single post.
func Split(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return nil
	}

	words := strings.Fields(text)

	// The suffix width depends on the part count, which depends on
	// the per-part budget. Start from the smallest suffix and re-chunk
	// until the reserve covers the count actually produced.
	reserve := len(" (1/1)")
	var parts []string
	for {
		budget := limit - reserve
		if budget < 1 {
			// The limit cannot fit any content next to an indicator.
			return []string{text}
		}

		parts = chunk(words, budget)

		need := len(fmt.Sprintf(" (%d/%d)", len(parts), len(parts)))
		if need <= reserve {
			break
		}
		reserve = need
	}

	for i := range parts {
		parts[i] = fmt.Sprintf("%s (%d/%d)", parts[i], i+1, len(parts))
	}

	return parts
}

// chunk greedily packs words into parts of at most budget runes.
func chunk(words []string, budget int) []string {
	var parts []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			parts = append(parts, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)

		// A single word longer than the whole budget is split by runes.
		if wordLen > budget {
			flush()
			runes := []rune(word)
			for len(runes) > budget {
				parts = append(parts, string(runes[:budget]))
				runes = runes[budget:]
			}
			current.WriteString(string(runes))
			currentLen = len(runes)
			continue
		}

		sep := 0
		if currentLen > 0 {
			sep = 1
		}
		if currentLen+sep+wordLen > budget {
			flush()
			sep = 0
		}
		if sep == 1 {
			current.WriteString(" ")
		}
		current.WriteString(word)
		currentLen += sep + wordLen
	}
	flush()

	return parts
}
