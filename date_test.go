package texreport

import (
	"errors"
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.November, 9, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    string
		wantSet bool
		wantErr error
	}{
		{"unset", "", "", false, nil},
		{"none", "none", "", true, nil},
		{"literal", "Autumn 2024", "Autumn 2024", true, nil},
		{"auto", "auto", "2024-11-09", true, nil},
		{"auto format", "auto:DD.MM.YY", "09.11.24", true, nil},
		{"auto preset", "auto:us", "11/09/2024", true, nil},
		{"invalid", "auto:", "", false, ErrInvalidDate},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, set, err := ResolveDate(tt.value, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ResolveDate(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want || set != tt.wantSet {
				t.Errorf("ResolveDate(%q) = %q, %v; want %q, %v", tt.value, got, set, tt.want, tt.wantSet)
			}
		})
	}
}
