package texreport

import (
	"fmt"
	"time"

	"github.com/alnah/go-texreport/internal/dateutil"
)

// ResolveDate returns the text printed by \date{} for value at time t:
//   - "auto" → t as YYYY-MM-DD
//   - "auto:FORMAT" → t in a custom format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset" → t using a preset (iso, european, us, long, report)
//   - "none" → empty date
//   - any other value → returned unchanged
//
// The boolean is false for an empty value, meaning no \date line is written
// and LaTeX prints the compilation date.
func ResolveDate(value string, t time.Time) (string, bool, error) {
	spec, err := dateutil.ParseSpec(value)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	text, ok := spec.Text(t)
	return text, ok, nil
}
