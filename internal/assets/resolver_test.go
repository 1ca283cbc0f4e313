package assets

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestAssetResolver - Custom-first loading with embedded fallback
// ---------------------------------------------------------------------------

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	r, err := NewAssetResolver("")
	if err != nil {
		t.Fatalf("NewAssetResolver(\"\") error = %v", err)
	}
	if r.HasCustomLoader() {
		t.Error("HasCustomLoader() = true for empty path")
	}

	r, err = NewAssetResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewAssetResolver(dir) error = %v", err)
	}
	if !r.HasCustomLoader() {
		t.Error("HasCustomLoader() = false for valid path")
	}

	if _, err := NewAssetResolver("/nonexistent/path/abc123xyz"); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewAssetResolver(missing) error = %v, want ErrInvalidBasePath", err)
	}
}

func TestAssetResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles/default.sty", "custom default")
	writeAsset(t, dir, "styles/lab.sty", "lab")

	r, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	tests := []struct {
		name    string
		style   string
		want    string
		wantErr error
	}{
		{name: "custom overrides embedded", style: "default", want: "custom default"},
		{name: "custom only", style: "lab", want: "lab"},
		{name: "falls back to embedded", style: "minimal", want: `\ProvidesPackage{Style}`},
		{name: "missing everywhere", style: "nope", wantErr: ErrStyleNotFound},
		{name: "invalid name does not fall back", style: "../lab", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", tt.style, err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("LoadStyle(%q) = %q, want containing %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestAssetResolver_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "templates/default/"+PreambleFile, "custom preamble")
	writeAsset(t, dir, "templates/default/"+TitleFile, "custom title")
	writeAsset(t, dir, "templates/broken/"+PreambleFile, "only preamble")

	r, err := NewAssetResolver(dir)
	if err != nil {
		t.Fatalf("NewAssetResolver() error = %v", err)
	}

	ts, err := r.LoadTemplateSet("default")
	if err != nil {
		t.Fatalf("LoadTemplateSet(default) error = %v", err)
	}
	if ts.Preamble != "custom preamble" {
		t.Errorf("Preamble = %q, want custom preamble", ts.Preamble)
	}

	ts, err = r.LoadTemplateSet("compact")
	if err != nil {
		t.Fatalf("LoadTemplateSet(compact) error = %v", err)
	}
	if !strings.Contains(ts.Preamble, `{report}`) {
		t.Errorf("compact fallback Preamble = %q", ts.Preamble)
	}

	if _, err := r.LoadTemplateSet("broken"); !errors.Is(err, ErrIncompleteTemplateSet) {
		t.Errorf("LoadTemplateSet(broken) error = %v, want ErrIncompleteTemplateSet", err)
	}
}
