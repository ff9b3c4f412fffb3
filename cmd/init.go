package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RustWorks/harper-grammar-checker/internal/lints"
	"github.com/RustWorks/harper-grammar-checker/internal/patterns"
	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
	"github.com/RustWorks/harper-grammar-checker/lint"
)

var forceInit bool

// initCmd: harper init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = defaultConfigYML
		}
		if err := initConfigurationFile(path, forceInit); err != nil {
			return fmt.Errorf("error initializing config file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "overwrite an existing configuration file")
}

func defaultConfig() lint.Config {
	replacement := "unique"
	return lint.Config{
		Name: "harper",
		Rules: map[string]tt.ConfigRule{
			"adjective-of-a": {Severity: tt.SeverityWarning},
		},
		Phrases: []lints.PhraseConfig{
			{
				Name:        "very-unique",
				Description: "Flags intensified absolutes such as `very unique`.",
				Message:     "Something is either unique or it is not.",
				Replacement: &replacement,
				Pattern: []patterns.Spec{
					{Kind: patterns.SpecWordSet, Words: []string{"very", "quite", "rather"}},
					{Kind: patterns.SpecWhitespace},
					{Kind: patterns.SpecWordSet, Words: []string{"unique"}},
				},
			},
		},
	}
}

func initConfigurationFile(configurationPath string, force bool) error {
	if _, err := os.Stat(configurationPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configurationPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	config := defaultConfig()

	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(configurationPath)) {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return err
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(config); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}

	return os.WriteFile(configurationPath, buf.Bytes(), 0o644)
}
