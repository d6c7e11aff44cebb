package bundle

import (
	"testing"

	"bibsite/internal/bibtex"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		entryType string
		want      int
	}{
		{"article", 2},
		{"inproceedings", 1},
		{"book", 5},
		{"inbook", 6},
		{"incollection", 6},
		{"phdthesis", 7},
		{"mastersthesis", 7},
		{"techreport", 4},
		{"manual", 4},
		{"unpublished", 3},
		{"patent", 8},
		{"misc", 0},
		{"proceedings", 0},
		{"lecture", 0}, // unknown types are "other"
		{"ARTICLE", 2},
	}

	for _, tt := range tests {
		t.Run(tt.entryType, func(t *testing.T) {
			if got := Classify(tt.entryType); got != tt.want {
				t.Errorf("Classify(%q) = %d, want %d", tt.entryType, got, tt.want)
			}
		})
	}
}

func entryWith(fields map[string]string) bibtex.Entry {
	return bibtex.Entry{Type: "article", Key: "key", Fields: fields}
}

func TestVenue(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		year   string
		want   string
	}{
		{
			name:   "booktitle wins over journal",
			fields: map[string]string{"booktitle": "Proc. of Things", "journal": "PRB"},
			year:   "2020",
			want:   "*Proc. of Things*",
		},
		{
			name:   "journal with volume",
			fields: map[string]string{"journal": "Phys. Rev. B", "volume": "102", "pages": "115117"},
			year:   "2020",
			want:   "Phys. Rev. B **102**, 115117 (2020).",
		},
		{
			name:   "journal without volume",
			fields: map[string]string{"journal": "Phys. Rev. B", "pages": "115117"},
			year:   "2020",
			want:   "Phys. Rev. B 115117 (2020).",
		},
		{
			name:   "publisher fallback",
			fields: map[string]string{"publisher": "Springer"},
			year:   "2020",
			want:   "*Springer*",
		},
		{
			name:   "no venue fields",
			fields: map[string]string{},
			year:   "2020",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Venue(entryWith(tt.fields), tt.year)
			if got != tt.want {
				t.Errorf("Venue = %q, want %q", got, tt.want)
			}
		})
	}
}
