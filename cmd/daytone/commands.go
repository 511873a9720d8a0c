package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daytone/daytone/internal/carousel"
	"github.com/daytone/daytone/internal/config"
	"github.com/daytone/daytone/internal/session"
	"github.com/daytone/daytone/internal/ui/common"
)

var copyToClipboard = common.CopyToClipboard

func newTuneCommand(flags *globalFlags) *cobra.Command {
	var (
		tuner   string
		drag    float64
		tap     float64
		size    float64
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Simulate a gesture on a tuner and print where it settles",
		Long: `Simulate a drag or tap on a tuner without a terminal and print the item it
settles on. Positions are in cells along the tuner axis, measured from the
start of the viewport.

Examples:
  daytone tune --drag -18            # drag the channel dial one slot left
  daytone tune --tap 70              # tap right of centre
  daytone tune --tuner genre --drag 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			tc, err := tunerConfig(cfg, tuner)
			if err != nil {
				return err
			}
			if size <= 0 {
				size = defaultViewport(tc)
			}
			cc, err := tc.Carousel(cfg.Motion, carousel.Span{Length: size})
			if err != nil {
				return err
			}
			c, err := carousel.New(cc)
			if err != nil {
				return err
			}

			from, to := size/2, size/2+drag
			if cmd.Flags().Changed("tap") {
				from, to = tap, tap
			}
			f, ok := carousel.Drag(c, from, to)
			if !ok {
				return fmt.Errorf("%s tuner ignored the press", tuner)
			}
			steps := carousel.Settle(c, f, 0)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.Selected())
			if verbose {
				g := c.LastGesture()
				fmt.Fprintf(out, "gesture=%s distance=%.1f move=%d frames=%d (~%s)\n",
					g.Kind, g.Distance, g.Move, steps, time.Duration(steps)*cfg.Motion.FrameInterval)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tuner, "tuner", "channel", "tuner to drive: channel or genre")
	cmd.Flags().Float64Var(&drag, "drag", 0, "drag distance in cells from the viewport centre")
	cmd.Flags().Float64Var(&tap, "tap", 0, "tap position in cells")
	cmd.Flags().Float64Var(&size, "size", 0, "viewport length in cells (default fits the tuner)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print gesture details")
	return cmd
}

func tunerConfig(cfg *config.Config, name string) (config.TunerConfig, error) {
	switch name {
	case "channel":
		return cfg.Channel, nil
	case "genre":
		return cfg.Genre, nil
	default:
		return config.TunerConfig{}, fmt.Errorf("unknown tuner %q (want channel or genre)", name)
	}
}

// defaultViewport shows five slots, like the on-screen dials.
func defaultViewport(tc config.TunerConfig) float64 {
	return 5 * tc.ItemExtent
}

func newSessionNameCommand() *cobra.Command {
	var copyName bool
	cmd := &cobra.Command{
		Use:   "session-name",
		Short: "Print a fresh session recording name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := session.Random(time.Now(), nil)
			fmt.Fprintln(cmd.OutOrStdout(), name)
			if copyName {
				if err := copyToClipboard(name); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyName, "copy", false, "also copy the name to the clipboard")
	return cmd
}
