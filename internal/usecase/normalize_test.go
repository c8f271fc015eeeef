package usecase

import "testing"

func TestNormalizeOCRText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "converts CRLF to LF",
			input: "BANANAS 1.29\r\nTAX 0.08",
			want:  "BANANAS 1.29\nTAX 0.08",
		},
		{
			name:  "collapses tabs to a single space",
			input: "MILK\t\t3.89",
			want:  "MILK 3.89",
		},
		{
			name:  "collapses runs of spaces to one",
			input: "EGGS    4.19",
			want:  "EGGS 4.19",
		},
		{
			name:  "keeps the single-space decimal artifact",
			input: "MILK 3 89",
			want:  "MILK 3 89",
		},
		{
			name:  "collapses blank line runs",
			input: "A 1.00\n\n\n\nB 2.00",
			want:  "A 1.00\n\nB 2.00",
		},
		{
			name:  "trims trailing spaces per line",
			input: "BANANAS 1.29   \nTAX 0.08",
			want:  "BANANAS 1.29\nTAX 0.08",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeOCRText(tc.input)
			if got != tc.want {
				t.Errorf("NormalizeOCRText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
