// Package yamlutil decodes the YAML documents read by texreport (config files
// and report manifests) and keeps goccy/go-yaml behind a small surface.
package yamlutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrEmptyInput    = errors.New("yamlutil: empty input")
	ErrNilTarget     = errors.New("yamlutil: nil decode target")
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
	ErrSyntax        = errors.New("yamlutil: invalid document")
)

func checkInput(data []byte, v any) error {
	if v == nil {
		return ErrNilTarget
	}
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return nil
}

// DecodeStrict parses data into v and rejects keys that do not map to a field.
func DecodeStrict(data []byte, v any) error {
	if err := checkInput(data, v); err != nil {
		return err
	}
	return wrapSyntax(yaml.UnmarshalWithOptions(data, v, yaml.Strict()))
}

// DecodeFile reads path and decodes it strictly into v.
// The file is read through a limit so oversized inputs fail without being
// loaded completely.
func DecodeFile(path string, v any) error {
	f, err := os.Open(path) // #nosec G304 -- caller-provided path
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, int64(MaxInputSize)+1))
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := DecodeStrict(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Encode serializes v as YAML.
func Encode(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

// wrapSyntax tags decoder failures with ErrSyntax and renders the
// line/column context goccy attaches to them.
func wrapSyntax(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w\n%s", ErrSyntax, yaml.FormatError(err, false, true))
}
