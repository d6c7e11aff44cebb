// Package slug derives URL- and filename-safe identifiers from
// bibliography entry keys.
package slug

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	textThenDigits = regexp.MustCompile(`(\D+)(\d+)`)
	digitsThenText = regexp.MustCompile(`(\d+)(\D+)`)
	hyphenRuns     = regexp.MustCompile(`-{2,}`)
)

// Make converts an entry key into a lowercase slug. It is pure,
// deterministic and idempotent: Make(Make(s)) == Make(s).
func Make(key string) string {
	return slugify(key, true)
}

// MakePreserveCase is Make without the final lowercasing step.
func MakePreserveCase(key string) string {
	return slugify(key, false)
}

func slugify(s string, lower bool) string {
	for _, sym := range []string{".", "_", ":"} {
		s = strings.ReplaceAll(s, sym, "-")
	}

	// Delimit boundaries between digit runs and non-digit runs,
	// in both directions.
	s = textThenDigits.ReplaceAllString(s, "$1-$2")
	s = digitsThenText.ReplaceAllString(s, "$1-$2")

	s = splitCamel(s)

	// Keep only letters, digits and the hyphen delimiter.
	var b strings.Builder
	for _, r := range s {
		if r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	s = hyphenRuns.ReplaceAllString(b.String(), "-")

	if lower {
		s = strings.ToLower(s)
	}
	return s
}

// splitCamel inserts a hyphen before an upper-case letter that follows
// a lower-case letter, and before an internal (non-leading) upper-case
// letter that is followed by a lower-case letter.
func splitCamel(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteRune('-')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
