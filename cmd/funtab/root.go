package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tnguyen21/funtab/internal/app"
	"github.com/tnguyen21/funtab/internal/config"
	"github.com/tnguyen21/funtab/internal/logging"
)

// options are the flags shared by every command.
type options struct {
	configPath string
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "funtab",
		Short: "Browse pages through a scrolling tab strip",
		Long: `funtab shows a set of text pages under a strip of tabs. Drag pages
sideways or click a tab; the indicator under the strip tracks the page as it
moves.

Pages and strip settings are read from the config file. With no pages
configured a demo set is shown.`,
		Args: cobra.NoArgs,
		// Errors from running the UI are ours, not usage mistakes.
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocal(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultConfigPath, "path to config file")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file (overrides log_file)")
	flags.StringVar(&opts.logLevel, "log-level", "",
		fmt.Sprintf("logging level, one of %s (overrides log_level)", strings.Join(logging.ValidLevels(), ", ")))

	root.AddCommand(newRunCmd(opts), newServeCmd(opts))
	return root
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run in this terminal (the default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocal(cmd, opts)
		},
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.logLevel != "" {
		if _, err := logging.ParseLevel(opts.logLevel); err != nil {
			return cfg, err
		}
		cfg.LogLevel = opts.logLevel
	}
	return cfg, nil
}

// runLocal runs the UI on the controlling terminal. The UI owns the
// terminal, so logs only go to the configured log file.
func runLocal(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := app.New(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	logger.Info("starting", "pages", len(cfg.Pages), "config", opts.configPath)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
