package texreport

import "testing"

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{"", ""},
		{`a\b`, `a\textbackslash{}b`},
		{"50% & $5 #1 a_b {x}", `50\% \& \$5 \#1 a\_b \{x\}`},
		{"~^", `\textasciitilde{}\textasciicircum{}`},
		{"héllo →", "héllo →"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscape_NotIdempotent(t *testing.T) {
	t.Parallel()

	once := Escape("%")
	if twice := Escape(once); twice == once {
		t.Errorf("Escape(Escape(%%)) = %q, want a different string", twice)
	}
}
