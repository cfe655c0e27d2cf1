// Command statsinfo reports the kernel dispatch state and computes
// statistics on ad-hoc samples.
//
// Usage:
//
//	statsinfo [--config FILE] [--verbose] <command> [flags]
//
// Examples:
//
//	statsinfo impl
//	statsinfo impl --tier sse2
//	statsinfo describe 1 2 3 4 5
//	seq 1 100 | statsinfo describe --precision 32
//	statsinfo ttest --x1 1,2,3 --x2 4,5,6 --kind welch
//	statsinfo didt --x1 5,6,7 --x2 7,9,8 --y1 5,5,6 --y2 6,5,7
//	statsinfo r2z 0.3 0.9 1
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cwbudde/algo-stats/internal/config"
	"github.com/cwbudde/algo-stats/stats"
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg     *config.Config
	printer *message.Printer
	logger  *slog.Logger
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{printer: message.NewPrinter(language.English)}

	rootCmd := &cobra.Command{
		Use:          "statsinfo",
		Short:        "Inspect kernel dispatch and compute sample statistics",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup(errOut)
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newImplCmd(a),
		newDescribeCmd(a),
		newTTestCmd(a),
		newDiDCmd(a),
		newR2ZCmd(a),
	)
	return rootCmd
}

// setup loads configuration and installs the logger.
func (a *app) setup(errOut io.Writer) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFromFile(a.configPath)
		if err != nil {
			return err
		}
	} else {
		a.cfg = config.LoadFromEnv()
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	stats.SetScratchLimit(a.cfg.MaxScratch)
	a.logger.Debug("configuration loaded", "config", a.cfg.String())
	return nil
}

// selectTier installs the tier named by flag, or the configured one when
// flag is empty, and returns what was installed.
func (a *app) selectTier(flag string) (stats.Tier, error) {
	name := flag
	if name == "" {
		if a.cfg.NoSIMD {
			name = "naive"
		} else {
			name = a.cfg.Impl
		}
	}
	requested, err := stats.ParseTier(name)
	if err != nil {
		return 0, err
	}
	installed := stats.Select(requested)
	a.logger.Debug("tier selected", "requested", requested.String(), "installed", installed.String())
	return installed, nil
}
