package bibtex

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse reads BibTeX records from r. Field values are stripped of
// their outer delimiters and LaTeX accent escapes are converted to
// unicode, so downstream consumers see normalized text. @comment,
// @preamble and @string blocks are skipped. Parsing stops with an
// error on a structurally broken record; validation beyond field
// extraction is out of scope.
func Parse(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bibtex: %w", err)
	}

	p := &parser{src: []rune(string(data))}
	var entries []Entry
	for {
		entry, ok, err := p.next()
		if err != nil {
			return entries, err
		}
		if !ok {
			return entries, nil
		}
		entries = append(entries, entry)
	}
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune { return p.src[p.pos] }

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

// next scans to the next @ record and parses it. ok is false at EOF.
func (p *parser) next() (Entry, bool, error) {
	for !p.eof() && p.peek() != '@' {
		p.pos++
	}
	if p.eof() {
		return Entry{}, false, nil
	}
	p.pos++ // consume '@'

	entryType := strings.ToLower(strings.TrimSpace(p.readUntil('{')))
	if p.eof() {
		return Entry{}, false, fmt.Errorf("unterminated @%s record", entryType)
	}
	p.pos++ // consume '{'

	switch entryType {
	case "comment", "preamble", "string":
		if err := p.skipBalanced(); err != nil {
			return Entry{}, false, fmt.Errorf("skipping @%s: %w", entryType, err)
		}
		return p.next()
	}

	key := strings.TrimSpace(p.readUntil(','))
	if p.eof() {
		return Entry{}, false, fmt.Errorf("@%s record has no fields", entryType)
	}
	p.pos++ // consume ','

	entry := Entry{Type: entryType, Key: key, Fields: make(map[string]string)}
	for {
		p.skipSpace()
		if p.eof() {
			return Entry{}, false, fmt.Errorf("unterminated record %q", key)
		}
		if p.peek() == '}' {
			p.pos++
			return entry, true, nil
		}
		if p.peek() == ',' {
			p.pos++
			continue
		}

		name := strings.ToLower(strings.TrimSpace(p.readUntil('=')))
		if p.eof() {
			return Entry{}, false, fmt.Errorf("record %q: field %q has no value", key, name)
		}
		p.pos++ // consume '='

		value, err := p.readValue()
		if err != nil {
			return Entry{}, false, fmt.Errorf("record %q, field %q: %w", key, name, err)
		}
		if name != "" {
			entry.Fields[name] = decodeAccents(value)
		}
	}
}

// readUntil consumes runes up to (not including) stop, or to EOF.
func (p *parser) readUntil(stop rune) string {
	start := p.pos
	for !p.eof() && p.peek() != stop {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// readValue reads one field value: a brace-delimited group (nesting
// allowed), a quoted string, or a bare word ending at ',' or '}'.
func (p *parser) readValue() (string, error) {
	p.skipSpace()
	if p.eof() {
		return "", fmt.Errorf("missing value")
	}

	switch p.peek() {
	case '{':
		p.pos++
		start := p.pos
		depth := 1
		for !p.eof() {
			switch p.peek() {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					value := string(p.src[start:p.pos])
					p.pos++
					return value, nil
				}
			}
			p.pos++
		}
		return "", fmt.Errorf("unbalanced braces")

	case '"':
		p.pos++
		start := p.pos
		for !p.eof() {
			if p.peek() == '"' && p.src[p.pos-1] != '\\' {
				value := string(p.src[start:p.pos])
				p.pos++
				return value, nil
			}
			p.pos++
		}
		return "", fmt.Errorf("unterminated quoted value")

	default:
		start := p.pos
		for !p.eof() && p.peek() != ',' && p.peek() != '}' {
			p.pos++
		}
		return strings.TrimSpace(string(p.src[start:p.pos])), nil
	}
}

// skipBalanced consumes up to and including the brace that closes the
// group opened before the call.
func (p *parser) skipBalanced() error {
	depth := 1
	for !p.eof() {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				p.pos++
				return nil
			}
		}
		p.pos++
	}
	return fmt.Errorf("unbalanced braces")
}
