// Package authors splits a BibTeX author field into individual display
// names and matches each against the member and alumni rosters.
package authors

import (
	"strings"

	"bibsite/internal/roster"
)

// Author is one parsed author, in input order.
type Author struct {
	Display string
	Match   roster.Match
}

// suffixes are generational name suffixes dropped from display
// (compared case-insensitively).
var suffixes = map[string]bool{
	"jnr":    true,
	"jr":     true,
	"junior": true,
}

// particles are lowercase name fragments that attach to the surname
// rather than standing as given names. The absorption heuristic has
// documented edge cases (a surname that legitimately is a bare
// particle); its behavior is preserved as-is.
var particles = map[string]bool{
	"ben": true,
	"van": true,
	"der": true,
	"de":  true,
	"la":  true,
	"le":  true,
}

// Parse splits raw on the literal " and " separator, normalizes each
// token to given names plus a last name, and queries the rosters
// (members first, then alumni). Output order mirrors input order.
// Parse never fails: a malformed token degrades to a bare last name
// that simply matches nothing.
func Parse(raw string, members, alumni *roster.Index) []Author {
	raw = strings.ReplaceAll(raw, "\n", " ")

	var out []Author
	for _, tok := range strings.Split(raw, " and ") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		firsts, last := splitName(tok)
		out = append(out, Author{
			Display: strings.Join(firsts, " ") + " " + last,
			Match:   roster.Resolve(last, firsts, members, alumni),
		})
	}
	return out
}

// splitName normalizes one raw author token to (firstNames, lastName).
func splitName(tok string) (firsts []string, last string) {
	if i := strings.Index(tok, ","); i >= 0 {
		// "Last, First ..." form.
		last = strings.TrimSpace(tok[:i])
		firsts = strings.Fields(tok[i+1:])
	} else {
		// "First ... Last" form. Initials gain a space after the
		// period so "J.R." displays as "J. R.".
		parts := strings.Fields(tok)
		if len(parts) == 0 {
			return nil, tok
		}
		last = parts[len(parts)-1]
		for _, p := range parts[:len(parts)-1] {
			firsts = append(firsts, strings.TrimSpace(strings.ReplaceAll(p, ".", ". ")))
		}
	}

	// A generational suffix in last-name position gives way to the
	// real last name; the suffix is dropped from display.
	if suffixes[strings.ToLower(last)] && len(firsts) > 0 {
		last = firsts[len(firsts)-1]
		firsts = firsts[:len(firsts)-1]
	}

	// Particle absorption: scan given names left to right; each
	// particle found moves the final given-name token onto the front
	// of the last name. More than one particle may be absorbed.
	for i := 0; i < len(firsts); i++ {
		if particles[firsts[i]] {
			last = firsts[len(firsts)-1] + " " + last
			firsts = firsts[:len(firsts)-1]
		}
	}

	return firsts, last
}
