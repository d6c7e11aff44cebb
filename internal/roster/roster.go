// Package roster loads the member and alumni lists and matches parsed
// author names against them.
package roster

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Person is one roster line: a profile link plus the person's name.
type Person struct {
	Link  string
	Last  string
	First string
}

// Kind tags which roster produced a match.
type Kind int

const (
	Unmatched Kind = iota
	Member
	Alumni
)

func (k Kind) String() string {
	switch k {
	case Member:
		return "member"
	case Alumni:
		return "alumni"
	}
	return "unmatched"
}

// Match is the result of querying the rosters for an author. Link is
// empty unless Kind is Member or Alumni.
type Match struct {
	Kind Kind
	Link string
}

// Index answers name queries against one roster. Roster file order is
// preserved among same-last-name entries so that tie-breaking is
// deterministic.
type Index struct {
	kind   Kind
	people []Person
	byLast map[string][]int
}

// Build indexes people by last name.
func Build(kind Kind, people []Person) *Index {
	idx := &Index{
		kind:   kind,
		people: people,
		byLast: make(map[string][]int, len(people)),
	}
	for i, p := range people {
		idx.byLast[p.Last] = append(idx.byLast[p.Last], i)
	}
	return idx
}

// Len returns the number of people in the roster.
func (idx *Index) Len() int {
	return len(idx.people)
}

// Find matches a parsed name against the roster. The last name must
// match exactly (case-sensitive). Among same-last-name candidates an
// exact match on the first given name wins over a match on its leading
// character only; within each pass, earlier roster lines win. A name
// with no given names never matches.
func (idx *Index) Find(last string, firstNames []string) Match {
	if len(firstNames) == 0 || firstNames[0] == "" {
		return Match{}
	}
	first := firstNames[0]
	candidates := idx.byLast[last]

	for _, i := range candidates {
		if idx.people[i].First == first {
			return Match{Kind: idx.kind, Link: idx.people[i].Link}
		}
	}

	lead := []rune(first)[0]
	for _, i := range candidates {
		cf := idx.people[i].First
		if cf != "" && []rune(cf)[0] == lead {
			return Match{Kind: idx.kind, Link: idx.people[i].Link}
		}
	}

	return Match{}
}

// Resolve queries the member index and then the alumni index. A member
// match wins when a person erroneously appears in both rosters.
func Resolve(last string, firstNames []string, members, alumni *Index) Match {
	if m := members.Find(last, firstNames); m.Kind != Unmatched {
		return m
	}
	return alumni.Find(last, firstNames)
}

// Load reads a roster file of whitespace-separated "link last first"
// triples, one person per line. Blank lines are ignored. A missing or
// malformed file is an error: the index cannot be built partially.
func Load(path string, kind Kind) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	var people []Person
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 3 {
			return nil, fmt.Errorf("%s:%d: want \"link last first\", got %q", path, lineNo, line)
		}
		people = append(people, Person{Link: words[0], Last: words[1], First: words[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}

	return Build(kind, people), nil
}
