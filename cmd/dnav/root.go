package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	apppkg "github.com/kk-code-lab/dnav/internal/app"
	"github.com/kk-code-lab/dnav/internal/config"
	"github.com/kk-code-lab/dnav/internal/logging"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

var errNotTerminal = errors.New("dnav needs an interactive terminal")

var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var runApplication = func(cfg *config.Config) error {
	application, err := apppkg.NewApplication(cfg)
	if err != nil {
		return err
	}
	application.Run()
	logging.Info("exiting", logging.String("path", application.CurrentPath()))
	return nil
}

type rootOptions struct {
	configPath string
	root       string
	dwell      time.Duration
	logLevel   string
	logFile    string
	confine    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "dnav [path]",
		Short: "Terminal directory navigator",
		Long: `dnav lists one directory at a time and lets you walk the tree with
the keyboard. The selected entry's details are shown next to the list.

Keys: ↓/j next, ↑/k previous, Enter/→/l enter, Backspace/←/h back,
r refresh, u open in file manager, q/Esc/Ctrl+C quit.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			if !isTerminal() {
				return errNotTerminal
			}

			if err := logging.Init(logging.Config{
				Level:      cfg.Log.Level,
				Format:     cfg.Log.Format,
				OutputPath: cfg.Log.File,
			}); err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer func() { _ = logging.Sync() }()

			if err := runApplication(cfg); err != nil {
				logging.Error("application failed", logging.Err(err))
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default $"+config.EnvConfigPath+" or the user config dir)")
	flags.StringVar(&opts.root, "root", "", "directory to start in (default /)")
	flags.DurationVar(&opts.dwell, "dwell", 0, "how long error messages stay on screen")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "log file path (empty string disables logging)")
	flags.BoolVar(&opts.confine, "confine", false, "never go above the root directory")

	return cmd
}

// resolveConfig layers defaults, the config file, flags and the positional
// path, in that order.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, args []string) (*config.Config, error) {
	path := opts.configPath
	explicit := path != "" || os.Getenv(config.EnvConfigPath) != ""
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = opts.root
	}
	if len(args) == 1 {
		cfg.Root = args[0]
	}
	if flags.Changed("dwell") {
		cfg.Dwell = opts.dwell
	}
	if flags.Changed("confine") {
		cfg.ConfineToRoot = opts.confine
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
