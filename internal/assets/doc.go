// Package assets provides the LaTeX style files and preamble templates used
// to assemble report sources.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in assets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles (default, minimal, pdflatex)
// and template sets (default, compact).
//
// FilesystemLoader allows users to provide custom assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver tries the custom FilesystemLoader first, falling back to
// EmbeddedLoader when the asset is not found there.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.sty           # written next to the report as Style.sty
//	└── templates/
//	    └── {name}/
//	        ├── preamble.tex     # \documentclass and packages
//	        └── title.tex        # title block up to the first body line
//
// Templates use text/template with << and >> as delimiters.
//
// # Security
//
// Asset names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
