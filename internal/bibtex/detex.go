package bibtex

import "regexp"

// accentPattern matches the three common accent escape forms:
// {\'e}, \'{e} and \'e.
var accentPattern = regexp.MustCompile("\\{\\\\(['\"^~`])([A-Za-z])\\}" +
	"|\\\\(['\"^~`])\\{([A-Za-z])\\}" +
	"|\\\\(['\"^~`])([A-Za-z])")

// accents maps accent mark and base letter to the composed rune.
var accents = map[rune]map[rune]rune{
	'\'': {
		'a': 'á', 'e': 'é', 'i': 'í', 'o': 'ó', 'u': 'ú', 'y': 'ý',
		'c': 'ć', 'n': 'ń', 's': 'ś', 'z': 'ź',
		'A': 'Á', 'E': 'É', 'I': 'Í', 'O': 'Ó', 'U': 'Ú', 'Y': 'Ý',
		'C': 'Ć', 'N': 'Ń', 'S': 'Ś', 'Z': 'Ź',
	},
	'`': {
		'a': 'à', 'e': 'è', 'i': 'ì', 'o': 'ò', 'u': 'ù',
		'A': 'À', 'E': 'È', 'I': 'Ì', 'O': 'Ò', 'U': 'Ù',
	},
	'"': {
		'a': 'ä', 'e': 'ë', 'i': 'ï', 'o': 'ö', 'u': 'ü', 'y': 'ÿ',
		'A': 'Ä', 'E': 'Ë', 'I': 'Ï', 'O': 'Ö', 'U': 'Ü',
	},
	'^': {
		'a': 'â', 'e': 'ê', 'i': 'î', 'o': 'ô', 'u': 'û',
		'A': 'Â', 'E': 'Ê', 'I': 'Î', 'O': 'Ô', 'U': 'Û',
	},
	'~': {
		'a': 'ã', 'n': 'ñ', 'o': 'õ',
		'A': 'Ã', 'N': 'Ñ', 'O': 'Õ',
	},
}

// specialPattern matches brace-wrapped letter macros and the cedilla
// and caron forms. The brace requirement keeps \o from firing inside
// longer macros such as \omega.
var specialPattern = regexp.MustCompile(`\{\\(ss|ae|AE|oe|OE|aa|AA|o|O|l|L|i)\}` +
	`|\\(c|v)\{([A-Za-z])\}`)

var specialLetters = map[string]string{
	"ss": "ß", "ae": "æ", "AE": "Æ", "oe": "œ", "OE": "Œ",
	"aa": "å", "AA": "Å", "o": "ø", "O": "Ø", "l": "ł", "L": "Ł", "i": "ı",
}

var cedillas = map[rune]rune{'c': 'ç', 'C': 'Ç', 's': 'ş', 'S': 'Ş'}

var carons = map[rune]rune{
	'c': 'č', 'C': 'Č', 's': 'š', 'S': 'Š', 'z': 'ž', 'Z': 'Ž',
	'r': 'ř', 'R': 'Ř', 'e': 'ě', 'E': 'Ě',
}

// decodeAccents converts LaTeX diacritic escapes to unicode. Escapes
// with no table entry pass through unchanged; the sanitizer decides
// their fate later.
func decodeAccents(s string) string {
	s = accentPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := accentPattern.FindStringSubmatch(m)
		mark, letter := pick(sub[1], sub[3], sub[5]), pick(sub[2], sub[4], sub[6])
		if table, ok := accents[firstRune(mark)]; ok {
			if r, ok := table[firstRune(letter)]; ok {
				return string(r)
			}
		}
		return m
	})

	return specialPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := specialPattern.FindStringSubmatch(m)
		if sub[1] != "" {
			return specialLetters[sub[1]]
		}
		table := cedillas
		if sub[2] == "v" {
			table = carons
		}
		if r, ok := table[firstRune(sub[3])]; ok {
			return string(r)
		}
		return m
	})
}

func pick(alts ...string) string {
	for _, a := range alts {
		if a != "" {
			return a
		}
	}
	return ""
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
