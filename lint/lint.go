package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/RustWorks/harper-grammar-checker/internal"
	"github.com/RustWorks/harper-grammar-checker/internal/lints"
	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
	"github.com/RustWorks/harper-grammar-checker/scanner"
)

// StdinName is the filename reported for text read from standard input.
const StdinName = "<stdin>"

type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(filename string, source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
}

// Config represents the overall configuration: rule severities, phrase
// rules and paths to skip.
type Config struct {
	Name    string                   `yaml:"name" toml:"name"`
	Rules   map[string]tt.ConfigRule `yaml:"rules" toml:"rules"`
	Phrases []lints.PhraseConfig     `yaml:"phrases,omitempty" toml:"phrases,omitempty"`
	Ignore  []string                 `yaml:"ignore,omitempty" toml:"ignore,omitempty"`
}

// New builds an engine from the configuration file at configurationPath.
// An empty path uses the built-in defaults.
func New(configurationPath string, opts ...internal.Option) (*internal.Engine, error) {
	var config Config
	if configurationPath != "" {
		var err error
		config, err = LoadConfig(configurationPath)
		if err != nil {
			return nil, err
		}
	}

	engine, err := internal.NewEngine(config.Rules, config.Phrases, opts...)
	if err != nil {
		return nil, err
	}
	for _, path := range config.Ignore {
		engine.IgnorePath(path)
	}
	return engine, nil
}

// LoadConfig reads a YAML or TOML configuration file, chosen by extension.
func LoadConfig(configurationPath string) (Config, error) {
	var config Config

	data, err := os.ReadFile(configurationPath)
	if err != nil {
		return config, fmt.Errorf("error reading configuration: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configurationPath)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &config); err != nil {
			return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
		}
	}

	return config, nil
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
	processor func(LintEngine, []byte) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return allIssues, err
		}
		issues, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return allIssues, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

// ProcessPath lints a single file, or every prose file below a directory.
// Directories are processed in parallel; a file that fails is logged and
// skipped. When ctx is cancelled the issues found so far are returned
// along with the context error.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			logger.Debug("Skipping file with unknown extension", zap.String("file", path))
			return nil, nil
		}
		return processor(engine, path)
	}

	found, err := scanner.New(path, scanner.DefaultExtensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	results := make([][]tt.Issue, len(found))
	bar := newProgressBar(len(found), path)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	var ctxErr error
	for i, file := range found {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		g.Go(func() error {
			fileIssues, err := processor(engine, file.Path)
			if err != nil {
				logger.Error("Error processing file", zap.String("file", file.Path), zap.Error(err))
			} else {
				results[i] = fileIssues
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	if bar != nil {
		_ = bar.Finish()
	}

	issues := make([]tt.Issue, 0)
	for _, fileIssues := range results {
		issues = append(issues, fileIssues...)
	}
	return issues, ctxErr
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine LintEngine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(StdinName, source)
}

func hasDesiredExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, desired := range scanner.DefaultExtensions {
		if strings.EqualFold(ext, desired) {
			return true
		}
	}
	return false
}
