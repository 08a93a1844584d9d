// Package config loads user preferences.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/suzukenz/vscode-copy-open-editors/internal/picker"
)

const (
	Dir       = ".config/copy-open-editors"
	File      = "config.yaml"
	EnvPrefix = "COPY_OPEN_EDITORS"
)

// Config represents the application configuration.
type Config struct {
	Exclude          []string    `mapstructure:"exclude"`
	RespectGitignore bool        `mapstructure:"respect_gitignore"`
	NoColor          bool        `mapstructure:"no_color"`
	Debug            bool        `mapstructure:"debug"`
	Theme            ThemeConfig `mapstructure:"theme"`
}

// ThemeConfig overrides picker theme fields. Empty fields keep the default.
type ThemeConfig struct {
	Prompt     string `mapstructure:"prompt"`
	Pointer    string `mapstructure:"pointer"`
	Checked    string `mapstructure:"checked"`
	Unchecked  string `mapstructure:"unchecked"`
	SelectedFg string `mapstructure:"selected_fg"`
	MatchFg    string `mapstructure:"match_fg"`
	TextFg     string `mapstructure:"text_fg"`
	MutedFg    string `mapstructure:"muted_fg"`
	Border     string `mapstructure:"border"`
	BorderFg   string `mapstructure:"border_fg"`
}

// ToTheme applies the overrides on top of picker.DefaultTheme.
func (t ThemeConfig) ToTheme() picker.Theme {
	return picker.DefaultTheme().Merge(picker.Theme{
		Prompt:     t.Prompt,
		Pointer:    t.Pointer,
		Checked:    t.Checked,
		Unchecked:  t.Unchecked,
		SelectedFg: t.SelectedFg,
		MatchFg:    t.MatchFg,
		TextFg:     t.TextFg,
		MutedFg:    t.MutedFg,
		Border:     t.Border,
		BorderFg:   t.BorderFg,
	})
}

// configPath returns the full path to the default config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, Dir, File), nil
}

// Load reads configuration from path, or ~/.config/copy-open-editors/config.yaml
// when path is empty, then applies COPY_OPEN_EDITORS_* environment variables
// and NO_COLOR.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("exclude", []string{})
	v.SetDefault("respect_gitignore", false)
	v.SetDefault("no_color", false)
	v.SetDefault("debug", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = configPath(); err != nil {
			return nil, err
		}
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if readErr := v.ReadInConfig(); readErr != nil {
		if explicit || !errors.Is(readErr, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	// NO_COLOR disables color when set to any non-empty value
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// Path returns the path to the default config file.
func Path() string {
	path, err := configPath()
	if err != nil {
		return filepath.Join("~", Dir, File)
	}
	return path
}
