// Package config provides configuration types, defaults and validation for authtui.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/interviewfun/authtui/internal/log"
)

// Config holds all configuration options for authtui.
type Config struct {
	Auth    AuthConfig      `mapstructure:"auth" yaml:"auth"`
	UI      UIConfig        `mapstructure:"ui" yaml:"ui"`
	Theme   ThemeConfig     `mapstructure:"theme" yaml:"theme"`
	Tracing TracingConfig   `mapstructure:"tracing" yaml:"tracing"`
	Flags   map[string]bool `mapstructure:"flags" yaml:"flags,omitempty"`
}

// AuthConfig points the client at the authentication server.
type AuthConfig struct {
	BaseURL     string        `mapstructure:"base_url" yaml:"base_url"`         // e.g. http://localhost:3000/api/auth
	CallbackURL string        `mapstructure:"callback_url" yaml:"callback_url"` // post-auth redirect target
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
	OpenBrowser bool          `mapstructure:"open_browser" yaml:"open_browser"` // open social sign-in URLs in the system browser
}

// UIConfig holds presentation options.
type UIConfig struct {
	BrandName      string `mapstructure:"brand_name" yaml:"brand_name"`
	ShowBrandPanel bool   `mapstructure:"show_brand_panel" yaml:"show_brand_panel"`
	MarkdownStyle  string `mapstructure:"markdown_style" yaml:"markdown_style"` // "dark" (default) or "light"
}

// ThemeConfig overrides the accent colors. Empty values keep the defaults.
type ThemeConfig struct {
	Accent string `mapstructure:"accent" yaml:"accent,omitempty"` // primary button and brand panel
	Error  string `mapstructure:"error" yaml:"error,omitempty"`   // field errors and the alert banner
}

// TracingConfig configures OpenTelemetry spans around auth calls.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
	Exporter     string  `mapstructure:"exporter" yaml:"exporter"` // none, file, stdout, otlp
	FilePath     string  `mapstructure:"file_path" yaml:"file_path,omitempty"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// DefaultCallbackURL is where the user lands after authenticating.
const DefaultCallbackURL = "/"

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Auth: AuthConfig{
			BaseURL:     "http://localhost:3000/api/auth",
			CallbackURL: DefaultCallbackURL,
			Timeout:     15 * time.Second,
			OpenBrowser: true,
		},
		UI: UIConfig{
			BrandName:      "interview fun ai",
			ShowBrandPanel: true,
			MarkdownStyle:  "dark",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // derived from the config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Flags: map[string]bool{},
	}
}

// DefaultTracesFilePath returns ~/.config/authtui/traces/traces.jsonl.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".authtui", "traces", "traces.jsonl")
	}
	return filepath.Join(home, ".config", "authtui", "traces", "traces.jsonl")
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if err := ValidateAuth(cfg.Auth); err != nil {
		return err
	}
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateAuth checks the auth server settings.
func ValidateAuth(a AuthConfig) error {
	if a.BaseURL == "" {
		return fmt.Errorf("auth.base_url is required")
	}
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("auth.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("auth.base_url must be an http or https URL, got %q", a.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("auth.base_url must include a host, got %q", a.BaseURL)
	}
	if !strings.HasPrefix(a.CallbackURL, "/") {
		return fmt.Errorf("auth.callback_url must be an absolute path, got %q", a.CallbackURL)
	}
	if a.Timeout < 0 {
		return fmt.Errorf("auth.timeout must not be negative, got %s", a.Timeout)
	}
	return nil
}

// ValidateUI checks presentation settings.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light", "notty":
		return nil
	}
	return fmt.Errorf("ui.markdown_style must be \"dark\", \"light\" or \"notty\", got %q", ui.MarkdownStyle)
}

// ValidateTheme checks that color overrides are hex colors.
func ValidateTheme(t ThemeConfig) error {
	for name, v := range map[string]string{"theme.accent": t.Accent, "theme.error": t.Error} {
		if v != "" && !hexColor.MatchString(v) {
			return fmt.Errorf("%s must be a hex color like #15803D, got %q", name, v)
		}
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Empty values fall back to defaults.
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	switch tracing.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
	}

	if tracing.Enabled && tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return out, nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# authtui configuration

auth:
  # Base URL of the authentication API (better-auth compatible)
  base_url: http://localhost:3000/api/auth
  # Where the user lands after signing in or signing up
  callback_url: /
  # Per-request timeout
  timeout: 15s
  # Open social sign-in URLs in the system browser
  open_browser: true

ui:
  brand_name: interview fun ai
  show_brand_panel: true   # Right-hand brand panel (hidden on narrow terminals anyway)
  markdown_style: dark     # Terms/privacy rendering: dark, light or notty

# theme:
#   accent: "#15803D"
#   error: "#DC2626"

# Spans around every auth call
# tracing:
#   enabled: false
#   exporter: file             # none, file, stdout, otlp
#   file_path: ~/.config/authtui/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0

# Feature flags
# flags:
#   # Disable the Google/GitHub buttons while a submission is pending
#   block-social-while-pending: false
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
