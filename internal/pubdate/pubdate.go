// Package pubdate resolves publication dates from possibly partial or
// conflicting BibTeX date fields.
package pubdate

import (
	"fmt"
	"strings"
)

// Date holds the resolved calendar parts as zero-padded strings.
// Year is empty when no field could supply it.
type Date struct {
	Year  string
	Month string
	Day   string
}

// monthAbbrs indexes standard three-letter month abbreviations;
// position+1 is the month number.
var monthAbbrs = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Resolve derives a date from the composite date field, the separate
// month field and the separate year field, in that precedence order.
// Month and day default to "01". Problems are returned as warnings;
// the date is always usable, possibly with an empty year.
func Resolve(dateField, monthField, yearField string) (Date, []string) {
	d := Date{Month: "01", Day: "01"}
	var warns []string

	if dateField != "" {
		parts := strings.Split(dateField, "-")
		switch len(parts) {
		case 3:
			d.Year, d.Month, d.Day = parts[0], parts[1], parts[2]
		case 2:
			d.Year, d.Month = parts[0], parts[1]
		case 1:
			d.Year = parts[0]
		}
	}

	// The separate month field applies only when the composite date
	// left the month at its default.
	if monthField != "" && d.Month == "01" {
		if m, ok := MonthNumber(monthField); ok {
			d.Month = m
		} else {
			warns = append(warns, fmt.Sprintf("unrecognized month %q, keeping default 01", monthField))
		}
	}

	if yearField != "" && d.Year == "" {
		d.Year = yearField
	}
	if d.Year == "" {
		warns = append(warns, "no resolvable year")
	}

	return d, warns
}

// MonthNumber converts a BibTeX month value to a zero-padded numeric
// string. Values of one or two characters are assumed numeric and pass
// through zero-padded; longer values are matched by their first three
// letters against the standard month abbreviations.
func MonthNumber(month string) (string, bool) {
	if len(month) <= 2 {
		if len(month) == 1 {
			return "0" + month, true
		}
		return month, true
	}

	abbr := titleCase(strings.TrimSpace(month))
	if len(abbr) > 3 {
		abbr = abbr[:3]
	}
	for i, m := range monthAbbrs {
		if m == abbr {
			return fmt.Sprintf("%02d", i+1), true
		}
	}
	return "", false
}

// titleCase upper-cases the first letter and lower-cases the rest.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
