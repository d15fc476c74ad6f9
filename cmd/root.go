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
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/campusctl/campus/internal/app"
	appacademy "github.com/campusctl/campus/internal/application/academy"
	"github.com/campusctl/campus/internal/config"
	"github.com/campusctl/campus/internal/domain/academy"
	"github.com/campusctl/campus/internal/flags"
	"github.com/campusctl/campus/internal/log"
	"github.com/campusctl/campus/internal/tracing"
	"github.com/campusctl/campus/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// defaultConfigPath is where a config is written when none is found.
const defaultConfigPath = ".campus/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	cfg       config.Config
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "campus",
	Short: "A terminal ui for keeping student and course records",
	Long: `A terminal user interface for registering students and instructors,
enrolling students in courses and assigning instructors to departments and
courses. Records live in memory for the length of the session.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .campus/config.yaml or ~/.config/campus/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (path from CAMPUS_LOG, default debug.log)")
	rootCmd.PersistentFlags().Bool("plain", false,
		"disable colours")

	// Bind flags to viper
	_ = viper.BindPFlag("ui.plain", rootCmd.PersistentFlags().Lookup("plain"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("ui.show_activity", defaults.UI.ShowActivity)
	viper.SetDefault("ui.plain", defaults.UI.Plain)
	viper.SetDefault("ui.help_style", defaults.UI.HelpStyle)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", config.DefaultTracesFilePath())
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .campus/config.yaml (current directory)
		// 2. ~/.config/campus/config.yaml (user config)
		if _, err := os.Stat(defaultConfigPath); err == nil {
			viper.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "campus"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .campus/config.yaml
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(defaultConfigPath); writeErr == nil {
				viper.SetConfigFile(defaultConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// initLogging enables the debug log when --debug or CAMPUS_DEBUG is set.
// The TUI logs through tea.LogToFile; other commands append to the file.
func initLogging(forTea bool) (func(), error) {
	if os.Getenv("CAMPUS_DEBUG") == "" && !debugFlag {
		return func() {}, nil
	}

	logPath := os.Getenv("CAMPUS_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	var (
		cleanup func()
		err     error
	)
	if forTea {
		cleanup, err = log.InitWithTeaLog(logPath, "campus")
	} else {
		cleanup, err = log.Init(logPath)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}

	log.Info(log.CatConfig, "Campus starting", "version", version, "debug", true, "logPath", logPath, "config", viper.ConfigFileUsed())
	return cleanup, nil
}

// newService seeds a registry from the configured catalog and wraps it with
// tracing. The returned cleanup closes the service and flushes spans.
func newService(c config.Config) (*appacademy.Service, func(), error) {
	registry, err := academy.NewSeededRegistry(c.Catalog.Domain())
	if err != nil {
		return nil, nil, fmt.Errorf("seeding catalog: %w", err)
	}

	tc := c.Tracing
	tc.SessionID = uuid.NewString()
	provider, err := tracing.NewProvider(tc)
	if err != nil {
		return nil, nil, fmt.Errorf("creating trace provider: %w", err)
	}

	svc := appacademy.NewService(registry, appacademy.WithTracer(provider.Tracer()))
	cleanup := func() {
		svc.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Trace provider shutdown failed", err)
		}
	}
	log.Debug(log.CatRegistry, "Registry seeded", "departments", len(registry.Departments()), "session", tc.SessionID)
	return svc, cleanup, nil
}

func runApp(_ *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cleanupLog, err := initLogging(true)
	if err != nil {
		return err
	}
	defer cleanupLog()

	if cfg.UI.Plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	styles.ApplyTheme(cfg.Theme.Highlight, cfg.Theme.Subtle, cfg.Theme.Error, cfg.Theme.Success)

	svc, cleanupSvc, err := newService(cfg)
	if err != nil {
		return err
	}
	defer cleanupSvc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	zone.NewGlobal()
	model := app.New(svc, cfg, flags.New(cfg.Flags)).WithLogListener(log.NewListener(ctx))
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	watchTheme(p)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	// The alt screen is gone by now, so repeat the farewell on the terminal.
	if m, ok := final.(app.Model); ok && m.Quitting() {
		fmt.Println(m.View())
	}
	return nil
}

// watchTheme forwards theme edits in the config file to the running program.
func watchTheme(p *tea.Program) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		var next config.Config
		if err := viper.Unmarshal(&next); err != nil {
			log.ErrorErr(log.CatConfig, "Failed to reload config", err, "path", e.Name)
			return
		}
		if err := config.ValidateTheme(next.Theme); err != nil {
			log.Warn(log.CatConfig, "Ignoring invalid theme", "error", err)
			return
		}
		log.Debug(log.CatConfig, "Config changed", "path", e.Name, "op", e.Op.String())
		p.Send(app.ThemeMsg{
			Highlight: next.Theme.Highlight,
			Subtle:    next.Theme.Subtle,
			Error:     next.Theme.Error,
			Success:   next.Theme.Success,
		})
	})
	viper.WatchConfig()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
