package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/RustWorks/harper-grammar-checker/internal"
	"github.com/RustWorks/harper-grammar-checker/internal/cache"
	"github.com/RustWorks/harper-grammar-checker/lint"
)

const (
	defaultTimeout   = 5 * time.Minute
	memoryCacheTTL   = 10 * time.Minute
	diskCacheTTL     = 7 * 24 * time.Hour
	defaultConfigYML = ".harper.yaml"
)

// ErrIssuesFound is returned when linting succeeded but reported issues.
var ErrIssuesFound = errors.New("issues found")

// config files picked up from the working directory when --config is unset
var defaultConfigFiles = []string{defaultConfigYML, ".harper.yml", ".harper.toml"}

var (
	cfgFile  string
	timeout  time.Duration
	verbose  bool
	cacheDir string
	noCache  bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "harper [paths...]",
	Short:             "harper - a rule-based grammar checker for prose",
	TraverseChildren:  true, // Prioritize subcommands
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		// no subcommand
		if len(args) == 0 {
			return cmd.Help()
		}
		// Format: harper [path1 path2 ...] => behaves like the lint subcommand
		return lintCmd.RunE(lintCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "configuration file (default: .harper.yaml or .harper.toml if present)")
	flags.DurationVar(&timeout, "timeout", defaultTimeout, "Set a timeout for the linter")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	flags.StringVar(&cacheDir, "cache-dir", "", "directory for cached results (default: user cache dir)")
	flags.BoolVar(&noCache, "no-cache", false, "disable the result cache")

	for _, name := range []string{"config", "timeout", "verbose", "cache-dir", "no-cache"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(rulesCmd)
}

// setup resolves flags against HARPER_* environment variables and builds
// the logger.
func setup(cmd *cobra.Command, _ []string) error {
	viper.SetEnvPrefix("HARPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cfgFile = viper.GetString("config")
	timeout = viper.GetDuration("timeout")
	verbose = viper.GetBool("verbose")
	cacheDir = viper.GetString("cache-dir")
	noCache = viper.GetBool("no-cache")

	if cfgFile == "" {
		cfgFile = findDefaultConfig()
	}

	l, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	logger = l
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func findDefaultConfig() string {
	for _, name := range defaultConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func newEngine() (*internal.Engine, error) {
	opts := []internal.Option{internal.WithLogger(logger)}

	if !noCache {
		dir := cacheDir
		if dir == "" {
			if base, err := os.UserCacheDir(); err == nil {
				dir = filepath.Join(base, "harper")
			}
		}
		if dir != "" {
			logger.Debug("Using result cache", zap.String("dir", dir))
			opts = append(opts, internal.WithCache(cache.NewLayeredCache(memoryCacheTTL, dir, diskCacheTTL), 0))
		}
	}

	if cfgFile != "" {
		logger.Debug("Using configuration", zap.String("file", cfgFile))
	}
	return lint.New(cfgFile, opts...)
}

// ignoreFromFlags applies the comma-separated --ignore and --ignore-paths
// values to the engine.
func ignoreFromFlags(engine lint.LintEngine, rules, paths string) {
	for _, rule := range splitList(rules) {
		engine.IgnoreRule(rule)
	}
	for _, path := range splitList(paths) {
		engine.IgnorePath(path)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
