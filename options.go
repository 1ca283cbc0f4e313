package texreport

import (
	"io"
	"log/slog"
	"time"
)

// Option configures a Document.
type Option func(*Document)

// documentConfig holds the settings applied by Options.
type documentConfig struct {
	logger         *slog.Logger
	strict         bool
	date           string
	style          string
	templateSet    string
	assetPath      string
	assetLoader    AssetLoader
	highlightStyle string
	now            func() time.Time
}

func defaultDocumentConfig() documentConfig {
	return documentConfig{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		style:       DefaultStyle,
		templateSet: DefaultTemplateSet,
		now:         time.Now,
	}
}

// WithLogger sets the logger receiving debug events for added content and
// info events for saves. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.cfg.logger = logger
		}
	}
}

// WithStrictNesting rejects content added while no section is open.
func WithStrictNesting() Option {
	return func(d *Document) {
		d.cfg.strict = true
	}
}

// WithDate sets the \date{} value. See ResolveDate for the accepted forms.
// An invalid value is reported by Render and Save.
func WithDate(value string) Option {
	return func(d *Document) {
		d.cfg.date = value
	}
}

// WithStyle selects the style written as Style.sty when Save is not given a
// style file.
func WithStyle(name string) Option {
	return func(d *Document) {
		if name != "" {
			d.cfg.style = name
		}
	}
}

// WithTemplateSet selects the preamble and title templates.
func WithTemplateSet(name string) Option {
	return func(d *Document) {
		if name != "" {
			d.cfg.templateSet = name
		}
	}
}

// WithAssetPath loads styles and templates from dir, falling back to the
// embedded ones. An invalid directory is reported by Render and Save.
func WithAssetPath(dir string) Option {
	return func(d *Document) {
		d.cfg.assetPath = dir
	}
}

// WithAssetLoader sets a custom loader for styles and templates.
// It takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(d *Document) {
		d.cfg.assetLoader = loader
	}
}

// WithHighlightStyle selects the chroma style used for code blocks in
// Markdown prose.
func WithHighlightStyle(name string) Option {
	return func(d *Document) {
		d.cfg.highlightStyle = name
	}
}

// WithNow sets the clock used to resolve "auto" dates.
func WithNow(now func() time.Time) Option {
	return func(d *Document) {
		if now != nil {
			d.cfg.now = now
		}
	}
}
