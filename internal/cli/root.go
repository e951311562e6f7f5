// Package cli implements the scrubber command line.
package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/llehouerou/scrubber/internal/app"
	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/icons"
	"github.com/llehouerou/scrubber/internal/log"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/stderr"
)

const (
	flagConfig = "config"
	flagIcons  = "icons"
	flagVolume = "volume"
)

// NewRootCmd builds the root command. run is called with the resolved
// configuration and the source argument.
func NewRootCmd(run func(cfg *config.Config, src string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scrubber [flags] <file>",
		Short:         "Play an audio file with mouse-driven seek and volume sliders",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg, args[0])
		},
	}

	cmd.Flags().StringP(flagConfig, "c", "", "Load this config file last")
	cmd.Flags().StringP(flagIcons, "I", "", "Icon style (nerd, unicode, none)")
	lo.Must0(cmd.RegisterFlagCompletionFunc(flagIcons, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icons.Styles(), cobra.ShellCompDirectiveNoFileComp
	}))
	cmd.Flags().Float64P(flagVolume, "V", config.DefaultVolume, "Initial volume, 0.0-1.0")

	return cmd
}

// loadConfig reads the config files and applies flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := lo.Must(cmd.Flags().GetString(flagConfig))
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", errmsg.OpConfigLoad, err)
	}

	if cmd.Flags().Changed(flagIcons) {
		cfg.Icons = lo.Must(cmd.Flags().GetString(flagIcons))
	}
	if cmd.Flags().Changed(flagVolume) {
		cfg.Volume = lo.ToPtr(lo.Must(cmd.Flags().GetFloat64(flagVolume)))
	}
	return cfg, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd(Run)
	cc.Init(&cc.Config{
		RootCmd:       root,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}

// Run starts the player on src and blocks until the UI exits.
func Run(cfg *config.Config, src string) error {
	logger, closer, err := log.Setup(cfg.GetLogConfig())
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	icons.Init(cfg.GetIcons())

	if err := stderr.Start(); err != nil {
		logger.WithError(err).Warn("stderr capture unavailable")
	} else {
		stderr.Forward(logger)
		defer stderr.Stop()
	}

	p := player.New(player.Options{
		ProgressInterval: cfg.GetProgressInterval(),
		Logger:           logger,
	})
	defer p.Close()
	p.SetVolume(cfg.GetVolume())

	var requests <-chan mpris.Request
	if cfg.MPRISEnabled() {
		a, err := mpris.New(p, logger)
		if err != nil {
			logger.WithError(err).Warn(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer a.Close()
			requests = a.Requests()
		}
	}

	m := app.New(app.Options{
		Handle:     p,
		Source:     src,
		SeekStep:   cfg.GetSeekStep(),
		VolumeStep: cfg.GetVolumeStep(),
		Grace:      cfg.GetClickGrace(),
		Requests:   requests,
		Logger:     logger,
	})

	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		logger.WithError(err).Error("ui stopped")
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
