package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/interviewfun/authtui/internal/app"
	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/config"
	"github.com/interviewfun/authtui/internal/log"
	"github.com/interviewfun/authtui/internal/nav"
	"github.com/interviewfun/authtui/internal/pubsub"
	"github.com/interviewfun/authtui/internal/tracing"
	"github.com/interviewfun/authtui/internal/ui/styles"
	"github.com/interviewfun/authtui/internal/watcher"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, so the
	// OSC 11 reply does not land in a text input.
	_ = lipgloss.HasDarkBackground()
}

const defaultConfigPath = ".authtui/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	startPath string
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "authtui",
	Short:   "Sign up and sign in from the terminal",
	Long:    `A terminal sign-up and sign-in client for a better-auth compatible authentication server, with email/password and Google or GitHub sign-in.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .authtui/config.yaml or ~/.config/authtui/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs and enable the ctrl+x log overlay (or set AUTHTUI_DEBUG)")
	rootCmd.PersistentFlags().StringVar(&startPath, "start", nav.SignUp,
		"route to open first (/sign-up, /sign-in, /terms, /privacy)")
	rootCmd.Flags().String("base-url", "", "authentication API base URL (overrides config)")

	_ = viper.BindPFlag("auth.base_url", rootCmd.Flags().Lookup("base-url"))
}

// setDefaults registers every key so Unmarshal sees it even when the file
// omits it.
func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("auth.base_url", d.Auth.BaseURL)
	v.SetDefault("auth.callback_url", d.Auth.CallbackURL)
	v.SetDefault("auth.timeout", d.Auth.Timeout)
	v.SetDefault("auth.open_browser", d.Auth.OpenBrowser)
	v.SetDefault("ui.brand_name", d.UI.BrandName)
	v.SetDefault("ui.show_brand_panel", d.UI.ShowBrandPanel)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
}

// decodeConfig unmarshals v and fills runtime defaults.
func decodeConfig(v *viper.Viper) (config.Config, error) {
	var c config.Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	if c.Tracing.FilePath == "" {
		c.Tracing.FilePath = config.DefaultTracesFilePath()
	}
	return c, nil
}

func initConfig() {
	setDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// .authtui/config.yaml in the working directory wins over the
		// user config.
		if _, err := os.Stat(defaultConfigPath); err == nil {
			viper.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "authtui"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(defaultConfigPath); writeErr == nil {
				viper.SetConfigFile(defaultConfigPath)
				_ = viper.ReadInConfig()
			}
		}
	}

	decoded, err := decodeConfig(viper.GetViper())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	cfg = decoded
}

// setupLogging enables file logging when --debug or AUTHTUI_DEBUG is set.
// The returned func is always safe to call.
func setupLogging() (debug bool, cleanup func(), err error) {
	debug = debugFlag || os.Getenv("AUTHTUI_DEBUG") != ""
	if !debug {
		return false, func() {}, nil
	}
	logPath := os.Getenv("AUTHTUI_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err = log.Init(logPath)
	if err != nil {
		return false, func() {}, fmt.Errorf("initializing logging: %w", err)
	}
	if lvl := os.Getenv("AUTHTUI_LOG_LEVEL"); lvl != "" {
		parsed, perr := log.ParseLevel(lvl)
		if perr != nil {
			cleanup()
			return false, func() {}, perr
		}
		log.SetMinLevel(parsed)
	}
	log.Info(log.CatConfig, "authtui starting", "version", version, "logPath", logPath, "config", viper.ConfigFileUsed())
	return true, cleanup, nil
}

// newClient builds the HTTP client for c, wrapped in spans when tracing
// is on.
func newClient(c config.Config, provider *tracing.Provider) (auth.Client, error) {
	var browser auth.BrowserOpener = auth.SystemBrowser{}
	if !c.Auth.OpenBrowser {
		browser = auth.NoBrowser{}
	}
	opts := []auth.Option{auth.WithBrowserOpener(browser)}
	if c.Auth.Timeout > 0 {
		opts = append(opts, auth.WithTimeout(c.Auth.Timeout))
	}

	httpClient, err := auth.NewHTTPClient(c.Auth.BaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating auth client: %w", err)
	}
	if provider != nil && provider.Enabled() {
		return auth.NewTracedClient(httpClient, provider.Tracer()), nil
	}
	return httpClient, nil
}

func runApp(_ *cobra.Command, _ []string) error {
	debug, cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	styles.ApplyTheme(cfg.Theme)

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.Warn(log.CatTrace, "tracing shutdown", "error", err)
		}
	}()

	client, err := newClient(cfg, provider)
	if err != nil {
		return err
	}
	return runProgram(client, debug)
}

// runProgram runs the TUI against client until the user quits.
func runProgram(client auth.Client, debug bool) error {
	zone.NewGlobal()
	model := app.New(app.Options{
		Client: client,
		Config: cfg,
		Start:  startPath,
		Debug:  debug,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchConfig(ctx, p)

	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Close()
	} else {
		model.Close()
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// watchConfig forwards config file edits to the running program until
// ctx is done.
func watchConfig(ctx context.Context, p *tea.Program) {
	path := viper.ConfigFileUsed()
	if path == "" {
		return
	}
	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		log.Warn(log.CatConfig, "config hot reload disabled", "error", err)
		return
	}
	events := w.Broker().Subscribe(ctx)
	if err := w.Start(); err != nil {
		_ = w.Stop()
		log.Warn(log.CatConfig, "config hot reload disabled", "error", err)
		return
	}

	go func() {
		defer func() { _ = w.Stop() }()
		for ev := range events {
			if ev.Type != pubsub.ChangedEvent {
				continue
			}
			next, err := reloadConfig(viper.GetViper())
			if err != nil {
				log.Warn(log.CatConfig, "config reload failed", "path", ev.Payload.Path, "error", err)
				continue
			}
			p.Send(app.ConfigReloadedMsg{Config: next})
		}
	}()
}

// reloadConfig re-reads v's config file.
func reloadConfig(v *viper.Viper) (config.Config, error) {
	if err := v.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("reading config: %w", err)
	}
	return decodeConfig(v)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
