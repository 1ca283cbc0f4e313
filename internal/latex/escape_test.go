package latex

// Notes:
// - TestEscape_NoUnescapedReserved strips every known escape sequence from the
//   output and checks that no reserved character is left behind.
// - Escape is deliberately not idempotent; TestEscape_NotIdempotent pins that.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestEscape - Reserved character mapping
// ---------------------------------------------------------------------------

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text unchanged", "Quarterly results", "Quarterly results"},
		{"unicode unchanged", "Résumé — 東京", "Résumé — 東京"},
		{"ampersand", "R&D", `R\&D`},
		{"percent", "50% off", `50\% off`},
		{"dollar", "$5", `\$5`},
		{"hash", "#1", `\#1`},
		{"underscore", "file_name", `file\_name`},
		{"braces", "{x}", `\{x\}`},
		{"tilde", "~/home", `\textasciitilde{}/home`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"backslash before brace", `\{`, `\textbackslash{}\{`},
		{"all reserved", `\&%$#_{}~^`, `\textbackslash{}\&\%\$\#\_\{\}\textasciitilde{}\textasciicircum{}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Escape(tt.input); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEscape_NoUnescapedReserved - Output safety property
// ---------------------------------------------------------------------------

// knownEscapes removes every sequence Escape can produce.
var knownEscapes = strings.NewReplacer(
	`\textbackslash{}`, "",
	`\textasciitilde{}`, "",
	`\textasciicircum{}`, "",
	`\&`, "",
	`\%`, "",
	`\$`, "",
	`\#`, "",
	`\_`, "",
	`\{`, "",
	`\}`, "",
)

func TestEscape_NoUnescapedReserved(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"nothing special",
		`\\\\`,
		`\textbackslash{}`,
		"{{}}",
		"100% of $x_1^2 & #tags ~ok",
		`C:\Users\report_{final}.tex`,
		"mixed é ü & 😀 _",
		"^^^~~~",
	}

	for _, in := range inputs {
		out := Escape(in)
		rest := knownEscapes.Replace(out)
		if strings.ContainsAny(rest, Reserved) {
			t.Errorf("Escape(%q) = %q leaves unescaped reserved characters in %q", in, out, rest)
		}
	}
}

// ---------------------------------------------------------------------------
// TestEscape_NotIdempotent - Double escaping
// ---------------------------------------------------------------------------

func TestEscape_NotIdempotent(t *testing.T) {
	t.Parallel()

	once := Escape("a&b")
	twice := Escape(once)
	if once == twice {
		t.Fatalf("Escape(Escape(x)) = Escape(x) = %q, expected double escaping", once)
	}
	if twice != `a\textbackslash{}\&b` {
		t.Errorf("Escape(Escape(%q)) = %q", "a&b", twice)
	}
}

// ---------------------------------------------------------------------------
// TestEscapeVerbatim - Command characters inside Verbatim
// ---------------------------------------------------------------------------

func TestEscapeVerbatim(t *testing.T) {
	t.Parallel()

	got := EscapeVerbatim(`f(x) { return a\b % 2 }`)
	want := `f(x) \TRZob{} return a\TRZbs{}b % 2 \TRZcb{}`
	if got != want {
		t.Errorf("EscapeVerbatim() = %q, want %q", got, want)
	}
}
