package main

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/daytone/daytone/internal/app"
	"github.com/daytone/daytone/internal/config"
	"github.com/daytone/daytone/internal/logging"
	"github.com/daytone/daytone/internal/perf"
)

// Version info set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type globalFlags struct {
	home     string
	config   string
	logLevel string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "daytone",
		Short:         "A terminal radio with drag-to-tune channel and genre dials",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return runTUI(cfg, flags.logLevel)
		},
	}
	root.PersistentFlags().StringVar(&flags.home, "home", "", "state directory (default ~/.daytone)")
	root.PersistentFlags().StringVar(&flags.config, "config", "", "config file (default <home>/config.json)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newTuneCommand(flags))
	root.AddCommand(newSessionNameCommand())
	return root
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	var paths *config.Paths
	if flags.home != "" {
		paths = config.PathsAt(flags.home)
	} else {
		p, err := config.DefaultPaths()
		if err != nil {
			return nil, err
		}
		paths = p
	}
	if flags.config != "" {
		paths.ConfigPath = flags.config
	}
	cfg, err := config.LoadFrom(paths)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func runTUI(cfg *config.Config, logLevel string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Paths.LogDir, level); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
	}
	defer logging.Close()

	logging.Info("Starting daytone %s", version)

	a, err := app.New(cfg)
	if err != nil {
		logging.Error("Failed to initialize app: %v", err)
		return fmt.Errorf("initializing app: %w", err)
	}
	defer a.Shutdown()

	p := tea.NewProgram(
		a,
		tea.WithFilter(mouseEventFilter),
	)
	a.SetMsgSender(p.Send)

	if _, err := p.Run(); err != nil {
		logging.Error("App exited with error: %v", err)
		return fmt.Errorf("running app: %w", err)
	}
	perf.Flush("shutdown")
	logging.Info("daytone shutdown complete")
	return nil
}

var (
	lastMouseMotionEvent   time.Time
	lastMouseX, lastMouseY int
)

// mouseEventFilter drops repeated motion reports at an unchanged position.
// Drags only care about movement, so same-cell repeats are throttled.
func mouseEventFilter(m tea.Model, msg tea.Msg) tea.Msg {
	if msg, ok := msg.(tea.MouseMotionMsg); ok {
		if msg.X != lastMouseX || msg.Y != lastMouseY {
			lastMouseX = msg.X
			lastMouseY = msg.Y
			lastMouseMotionEvent = time.Now()
			return msg
		}
		now := time.Now()
		if now.Sub(lastMouseMotionEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseMotionEvent = now
	}
	return msg
}
