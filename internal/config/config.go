package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ThemeConfig holds TUI color configuration. Empty fields keep the preset's value.
type ThemeConfig struct {
	Preset     string `mapstructure:"preset"`
	Primary    string `mapstructure:"primary"`
	Secondary  string `mapstructure:"secondary"`
	Accent     string `mapstructure:"accent"`
	Muted      string `mapstructure:"muted"`
	Today      string `mapstructure:"today"`
	Selected   string `mapstructure:"selected"`
	Range      string `mapstructure:"range"`
	Background string `mapstructure:"background"`
	// MarkdownStyle is the glamour style used for the help overlay.
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// ScrollConfig holds viewport distances, measured in terminal lines.
type ScrollConfig struct {
	Threshold   int `mapstructure:"threshold"`
	LabelOffset int `mapstructure:"label_offset"`
}

// LoadingConfig holds the loading overlay timings.
type LoadingConfig struct {
	FadeDelay time.Duration `mapstructure:"fade_delay"`
	HideDelay time.Duration `mapstructure:"hide_delay"`
}

// MCPConfig holds the viewport distances for MCP hosts, measured in the
// host's own units (usually pixels).
type MCPConfig struct {
	Threshold   int `mapstructure:"threshold"`
	LabelOffset int `mapstructure:"label_offset"`
}

// WindowConfig bounds the materialised date window.
type WindowConfig struct {
	MaxMonths int `mapstructure:"max_months"`
}

// Config holds the application configuration.
type Config struct {
	Mode     string        `mapstructure:"mode"`
	MaxWidth int           `mapstructure:"max_width"`
	Theme    ThemeConfig   `mapstructure:"theme"`
	Scroll   ScrollConfig  `mapstructure:"scroll"`
	Loading  LoadingConfig `mapstructure:"loading"`
	Window   WindowConfig  `mapstructure:"window"`
	MCP      MCPConfig     `mapstructure:"mcp"`
}

// DefaultConfigDir returns the default config directory (~/.calscroll/).
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".calscroll")
	}
	return filepath.Join(home, ".calscroll")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("mode", "range")
	v.SetDefault("max_width", 0)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("theme.markdown_style", "")
	v.SetDefault("scroll.threshold", 2)
	v.SetDefault("scroll.label_offset", 0)
	v.SetDefault("loading.fade_delay", "500ms")
	v.SetDefault("loading.hide_delay", "250ms")
	v.SetDefault("window.max_months", 0)
	v.SetDefault("mcp.threshold", 100)
	v.SetDefault("mcp.label_offset", 30)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "calscroll"))
		}
		v.AddConfigPath(DefaultConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: CALSCROLL_MODE, CALSCROLL_SCROLL_THRESHOLD, etc.
	v.SetEnvPrefix("CALSCROLL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
