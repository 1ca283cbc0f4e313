package yamlutil_test

// Notes:
// - Encode error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions) which never reach it.
// - DecodeFile read errors other than "not found" are not tested; they need
//   a failing filesystem.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-texreport/internal/yamlutil"
)

type manifestLike struct {
	Title   string   `yaml:"title"`
	Strict  bool     `yaml:"strict"`
	Figures []string `yaml:"figures"`
}

// ---------------------------------------------------------------------------
// TestDecode - Decoding and input checks
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		target  any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name:   "known fields",
			data:   []byte("title: Results\nstrict: true\nfigures: [a.png, b.pgf]"),
			target: &manifestLike{},
			check: func(t *testing.T, v any) {
				m := v.(*manifestLike)
				if m.Title != "Results" || !m.Strict {
					t.Errorf("decoded = %+v", m)
				}
				if len(m.Figures) != 2 || m.Figures[1] != "b.pgf" {
					t.Errorf("Figures = %v, want [a.png b.pgf]", m.Figures)
				}
			},
		},
		{
			name:   "unicode",
			data:   []byte("title: Résultats 実験"),
			target: &manifestLike{},
			check: func(t *testing.T, v any) {
				if v.(*manifestLike).Title != "Résultats 実験" {
					t.Errorf("Title = %q", v.(*manifestLike).Title)
				}
			},
		},
		{"nil data", nil, &manifestLike{}, yamlutil.ErrEmptyInput, nil},
		{"empty data", []byte{}, &manifestLike{}, yamlutil.ErrEmptyInput, nil},
		{"nil target", []byte("title: x"), nil, yamlutil.ErrNilTarget, nil},
		{"syntax error", []byte("title: [unclosed"), &manifestLike{}, yamlutil.ErrSyntax, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.DecodeStrict(tt.data, tt.target)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeStrict() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeStrict() unexpected error: %v", err)
			}
			tt.check(t, tt.target)
		})
	}
}

// ---------------------------------------------------------------------------
// TestDecodeStrict - Unknown keys are rejected
// ---------------------------------------------------------------------------

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields only", func(t *testing.T) {
		t.Parallel()

		var m manifestLike
		if err := yamlutil.DecodeStrict([]byte("title: ok"), &m); err != nil {
			t.Fatalf("DecodeStrict() unexpected error: %v", err)
		}
		if m.Title != "ok" {
			t.Errorf("Title = %q, want %q", m.Title, "ok")
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		var m manifestLike
		err := yamlutil.DecodeStrict([]byte("title: ok\ntitel: typo"), &m)
		if !errors.Is(err, yamlutil.ErrSyntax) {
			t.Fatalf("DecodeStrict() error = %v, want ErrSyntax", err)
		}
		if !strings.Contains(err.Error(), "titel") {
			t.Errorf("error should name the unknown key, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestDecodeFile - Reading and decoding files
// ---------------------------------------------------------------------------

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "report.yaml")
		if err := os.WriteFile(path, []byte("title: From file\n"), 0o600); err != nil {
			t.Fatalf("writing manifest: %v", err)
		}

		var m manifestLike
		if err := yamlutil.DecodeFile(path, &m); err != nil {
			t.Fatalf("DecodeFile() unexpected error: %v", err)
		}
		if m.Title != "From file" {
			t.Errorf("Title = %q, want %q", m.Title, "From file")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		var m manifestLike
		err := yamlutil.DecodeFile(filepath.Join(dir, "missing.yaml"), &m)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("DecodeFile() error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("error names the file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("unknown: 1\n"), 0o600); err != nil {
			t.Fatalf("writing manifest: %v", err)
		}

		var m manifestLike
		err := yamlutil.DecodeFile(path, &m)
		if !errors.Is(err, yamlutil.ErrSyntax) {
			t.Fatalf("DecodeFile() error = %v, want ErrSyntax", err)
		}
		if !strings.Contains(err.Error(), "bad.yaml") {
			t.Errorf("error should contain file path, got: %v", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestEncode - Serialization used by the outline command
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Encode(manifestLike{Title: "Encoded", Figures: []string{"a.png"}})
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	s := string(out)
	for _, want := range []string{"title: Encoded", "strict: false", "- a.png"} {
		if !strings.Contains(s, want) {
			t.Errorf("Encode() output missing %q, got:\n%s", want, s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Note: This test modifies the global MaxInputSize variable, so it cannot
// run in parallel with other tests to avoid data races.

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 50

	t.Run("at limit", func(t *testing.T) {
		data := []byte("title: x" + strings.Repeat(" ", 42))
		var m manifestLike
		if err := yamlutil.DecodeStrict(data, &m); err != nil {
			t.Errorf("DecodeStrict() unexpected error: %v", err)
		}
	})

	t.Run("over limit reports sizes", func(t *testing.T) {
		data := make([]byte, 100)
		var m manifestLike
		err := yamlutil.DecodeStrict(data, &m)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Fatalf("DecodeStrict() error = %v, want ErrInputTooLarge", err)
		}
		if !strings.Contains(err.Error(), "100 bytes") || !strings.Contains(err.Error(), "max 50") {
			t.Errorf("error should contain sizes, got: %v", err)
		}
	})

	t.Run("file over limit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.yaml")
		if err := os.WriteFile(path, make([]byte, 200), 0o600); err != nil {
			t.Fatalf("writing file: %v", err)
		}
		var m manifestLike
		if err := yamlutil.DecodeFile(path, &m); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("DecodeFile() error = %v, want ErrInputTooLarge", err)
		}
	})
}
