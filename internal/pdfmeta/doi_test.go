package pdfmeta

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain doi",
			text: "DOI: 10.1103/PhysRevB.102.115117 published 2020",
			want: "10.1103/PhysRevB.102.115117",
		},
		{
			name: "trailing punctuation trimmed",
			text: "see https://doi.org/10.1000/xyz123.",
			want: "10.1000/xyz123",
		},
		{
			name: "first doi wins",
			text: "10.1000/first and 10.1000/second",
			want: "10.1000/first",
		},
		{
			name: "no doi",
			text: "nothing to see here",
			want: "",
		},
		{
			name: "prefix alone rejected",
			text: "version 10.04 of the code",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.text); got != tt.want {
				t.Errorf("FindDOI(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDOIMissingFile(t *testing.T) {
	if _, err := ExtractDOI("/nonexistent/file.pdf"); err == nil {
		t.Fatal("ExtractDOI of missing file should fail")
	}
}
