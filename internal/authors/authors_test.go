package authors

import (
	"testing"

	"bibsite/internal/roster"
)

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func emptyIndexes() (*roster.Index, *roster.Index) {
	return roster.Build(roster.Member, nil), roster.Build(roster.Alumni, nil)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name       string
		tok        string
		wantFirsts []string
		wantLast   string
	}{
		{
			name:       "first last",
			tok:        "John Smith",
			wantFirsts: []string{"John"},
			wantLast:   "Smith",
		},
		{
			name:       "comma form",
			tok:        "Smith, John Paul",
			wantFirsts: []string{"John", "Paul"},
			wantLast:   "Smith",
		},
		{
			name:       "comma form keeps initials as given",
			tok:        "Smith, J. R.",
			wantFirsts: []string{"J.", "R."},
			wantLast:   "Smith",
		},
		{
			name:       "joined initials gain spacing",
			tok:        "J.R. Smith",
			wantFirsts: []string{"J. R."},
			wantLast:   "Smith",
		},
		{
			name:       "suffix dropped",
			tok:        "John Smith Jr",
			wantFirsts: []string{"John"},
			wantLast:   "Smith",
		},
		{
			name:       "suffix case insensitive",
			tok:        "John Smith JUNIOR",
			wantFirsts: []string{"John"},
			wantLast:   "Smith",
		},
		{
			name:       "particle absorbed into last name",
			tok:        "Ludwig van Beethoven",
			wantFirsts: []string{"Ludwig"},
			wantLast:   "van Beethoven",
		},
		{
			name:       "bare particle surname",
			tok:        "van Gogh",
			wantFirsts: nil,
			wantLast:   "van Gogh",
		},
		{
			name:       "multiple particles absorb from the end",
			tok:        "Maria de la Cruz",
			wantFirsts: []string{"Maria", "de"},
			wantLast:   "la Cruz",
		},
		{
			name:       "bare last name",
			tok:        "Smith",
			wantFirsts: nil,
			wantLast:   "Smith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			firsts, last := splitName(tt.tok)
			if !equalStrings(firsts, tt.wantFirsts) || last != tt.wantLast {
				t.Errorf("splitName(%q) = %v, %q; want %v, %q",
					tt.tok, firsts, last, tt.wantFirsts, tt.wantLast)
			}
		})
	}
}

func TestParseOrderAndDisplay(t *testing.T) {
	members, alumni := emptyIndexes()

	raw := "Smith, John and Ludwig van Beethoven and\nJ.R. Ewing"
	got := Parse(raw, members, alumni)

	wantDisplays := []string{"John Smith", "Ludwig van Beethoven", "J. R. Ewing"}
	if len(got) != len(wantDisplays) {
		t.Fatalf("Parse returned %d authors, want %d", len(got), len(wantDisplays))
	}
	for i, want := range wantDisplays {
		if got[i].Display != want {
			t.Errorf("author %d display = %q, want %q", i, got[i].Display, want)
		}
		if got[i].Match.Kind != roster.Unmatched {
			t.Errorf("author %d unexpectedly matched: %+v", i, got[i].Match)
		}
	}
}

func TestParseDropsEmptyTokens(t *testing.T) {
	members, alumni := emptyIndexes()

	got := Parse("John Smith and  and Jane Doe", members, alumni)
	if len(got) != 2 {
		t.Fatalf("Parse returned %d authors, want 2", len(got))
	}
}

func TestParseMatchesRosters(t *testing.T) {
	members := roster.Build(roster.Member, []roster.Person{
		{Link: "jsmith", Last: "Smith", First: "John"},
	})
	alumni := roster.Build(roster.Alumni, []roster.Person{
		{Link: "jdoe", Last: "Doe", First: "Jane"},
	})

	got := Parse("Smith, John and Doe, Jane and Brown, Pat", members, alumni)
	if len(got) != 3 {
		t.Fatalf("Parse returned %d authors, want 3", len(got))
	}

	want := []roster.Match{
		{Kind: roster.Member, Link: "jsmith"},
		{Kind: roster.Alumni, Link: "jdoe"},
		{},
	}
	for i, w := range want {
		if got[i].Match != w {
			t.Errorf("author %d match = %+v, want %+v", i, got[i].Match, w)
		}
	}
}

func TestParseBareSurnameNeverMatches(t *testing.T) {
	members := roster.Build(roster.Member, []roster.Person{
		{Link: "jsmith", Last: "Smith", First: "John"},
	})
	_, alumni := emptyIndexes()

	got := Parse("Smith", members, alumni)
	if len(got) != 1 {
		t.Fatalf("Parse returned %d authors, want 1", len(got))
	}
	if got[0].Match.Kind != roster.Unmatched {
		t.Errorf("bare surname matched: %+v", got[0].Match)
	}
	// Display keeps the join-then-space shape even with no given names.
	if got[0].Display != " Smith" {
		t.Errorf("display = %q, want %q", got[0].Display, " Smith")
	}
}
