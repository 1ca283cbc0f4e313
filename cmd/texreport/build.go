package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	texreport "github.com/alnah/go-texreport"
	"github.com/alnah/go-texreport/internal/config"
	"github.com/alnah/go-texreport/internal/fileutil"
	"github.com/alnah/go-texreport/internal/hints"
	"github.com/alnah/go-texreport/internal/manifest"
)

// dirPermissions is rwxr-x---: owner full, group read+execute.
const dirPermissions = 0o750

// Sentinel errors for build operations.
var (
	ErrNoInput         = errors.New("no manifest specified")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// buildJob is one manifest to build.
type buildJob struct {
	ManifestPath string
	OutputDir    string
	FileName     string // empty = Report.tex
}

// buildParams holds what every job shares.
type buildParams struct {
	docOpts   []texreport.Option
	author    string
	styleFile string
	defaults  manifest.Defaults
	now       func() time.Time
}

// runBuild builds every manifest named by args and prints the results.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
	defer undo()

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(logger, env.Environ())

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	input, err := resolveInput(positional)
	if err != nil {
		return err
	}
	jobs, err := discoverJobs(input, cfg)
	if err != nil {
		return err
	}

	params, err := newBuildParams(cfg, env, logger)
	if err != nil {
		return err
	}

	workers := resolveWorkers(cfg.Build.Workers, len(jobs))
	logger.Debug("building", "manifests", len(jobs), "workers", workers)

	results := buildBatch(ctx, jobs, params, workers)
	return printResults(results, flags.common, env)
}

// loadConfig loads the config named by the flag, else by TEXREPORT_CONFIG.
// Without either, defaults are used.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
		return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
	}
	return cfg, err
}

// mergeFlags applies explicitly set flags over cfg.
func mergeFlags(f *buildFlags, cfg *config.Config) error {
	if f.assets.style != "" && f.assets.styleFile != "" {
		return fmt.Errorf("%w: --style and --style-file are mutually exclusive", ErrUsage)
	}

	if f.output != "" {
		cfg.Output.DefaultDir = f.output
	}
	if f.fileName != "" {
		cfg.Output.FileName = f.fileName
	}
	if f.workers != 0 {
		cfg.Build.Workers = f.workers
	}
	if f.document.author != "" {
		cfg.Document.Author = f.document.author
	}
	if f.document.date != "" {
		cfg.Document.Date = f.document.date
	}
	if f.document.strict {
		cfg.Structure.Strict = true
	}
	if f.assets.style != "" {
		cfg.Style.Name, cfg.Style.File = f.assets.style, ""
	}
	if f.assets.styleFile != "" {
		cfg.Style.Name, cfg.Style.File = "", f.assets.styleFile
	}
	if f.assets.template != "" {
		cfg.Style.Template = f.assets.template
	}
	if f.assets.assetPath != "" {
		cfg.Assets.BasePath = f.assets.assetPath
	}
	if f.layout.rows != 0 {
		cfg.Figure.Rows = f.layout.rows
	}
	if f.layout.cols != 0 {
		cfg.Figure.Cols = f.layout.cols
	}
	if f.layout.maxRows != 0 {
		cfg.Table.MaxRows = f.layout.maxRows
	}
	if f.layout.maxCols != 0 {
		cfg.Table.MaxCols = f.layout.maxCols
	}
	return nil
}

// resolveInput returns the single manifest file or directory argument.
func resolveInput(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", fmt.Errorf("%w: pass a manifest file or directory", ErrNoInput)
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected one manifest or directory, got %d arguments", ErrUsage, len(args))
	}
}

// discoverJobs expands input into build jobs. A directory yields one job per
// manifest in it; each then gets a report named after its manifest so that
// reports sharing an output directory do not overwrite each other.
func discoverJobs(input string, cfg *config.Config) ([]buildJob, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}

	paths := []string{input}
	if info.IsDir() {
		if paths, err = manifest.Discover(input); err != nil {
			return nil, err
		}
	}

	jobs := make([]buildJob, len(paths))
	for i, p := range paths {
		jobs[i] = buildJob{
			ManifestPath: p,
			OutputDir:    cfg.Output.DefaultDir,
			FileName:     cfg.Output.FileName,
		}
		if jobs[i].OutputDir == "" {
			jobs[i].OutputDir = filepath.Dir(p)
		}
		if jobs[i].FileName == "" && info.IsDir() {
			jobs[i].FileName = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)) + ".tex"
		}
	}
	return jobs, nil
}

// newBuildParams turns the merged config into document options. The asset
// loader is created once and shared by every job.
func newBuildParams(cfg *config.Config, env *Environment, logger *slog.Logger) (*buildParams, error) {
	loader, err := texreport.NewAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}

	opts := []texreport.Option{
		texreport.WithLogger(logger),
		texreport.WithNow(env.Now),
		texreport.WithAssetLoader(loader),
	}
	if cfg.Document.Date != "" {
		opts = append(opts, texreport.WithDate(cfg.Document.Date))
	}
	if cfg.Style.Name != "" {
		opts = append(opts, texreport.WithStyle(cfg.Style.Name))
	}
	if cfg.Style.Template != "" {
		opts = append(opts, texreport.WithTemplateSet(cfg.Style.Template))
	}
	if cfg.Structure.Strict {
		opts = append(opts, texreport.WithStrictNesting())
	}

	return &buildParams{
		docOpts:   opts,
		author:    cfg.Document.Author,
		styleFile: cfg.Style.File,
		defaults: manifest.Defaults{
			Rows:    cfg.Figure.Rows,
			Cols:    cfg.Figure.Cols,
			MaxRows: cfg.Table.MaxRows,
			MaxCols: cfg.Table.MaxCols,
		},
		now: env.Now,
	}, nil
}

// buildOne loads a manifest, builds its document and saves it.
func buildOne(job buildJob, p *buildParams) BuildResult {
	start := p.now()
	result := BuildResult{ManifestPath: job.ManifestPath}
	fail := func(err error) BuildResult {
		result.Err = err
		result.Duration = p.now().Sub(start)
		return result
	}

	m, err := manifest.Load(job.ManifestPath)
	if err != nil {
		return fail(err)
	}

	author := m.Author
	if author == "" {
		author = p.author
	}
	doc := texreport.New(m.Title, m.Subtitle, author, append(slices.Clone(p.docOpts), m.Options()...)...)
	defaults := p.defaults
	defaults.OutputDir = job.OutputDir
	if err := m.Apply(doc, defaults); err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(job.OutputDir, dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrCreateOutputDir, err))
	}

	styleFile := p.styleFile
	if m.Style != "" {
		styleFile = "" // a style named in the manifest wins over the config file
	}
	saved, err := doc.Save(job.OutputDir, texreport.SaveOptions{StyleFile: styleFile, FileName: job.FileName})
	if err != nil {
		return fail(err)
	}

	result.TexPath = saved.TexPath
	result.StylePath = saved.StylePath
	result.Duration = p.now().Sub(start)
	return result
}
