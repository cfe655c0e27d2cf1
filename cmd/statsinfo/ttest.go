package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-stats/stats"
)

func newTTestCmd(a *app) *cobra.Command {
	var (
		tier, x1s, x2s, kind string
	)
	cmd := &cobra.Command{
		Use:   "ttest",
		Short: "Two-sample t statistic (pooled, welch or paired)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			x1, err := parseValues([]string{x1s})
			if err != nil {
				return fmt.Errorf("--x1: %w", err)
			}
			x2, err := parseValues([]string{x2s})
			if err != nil {
				return fmt.Errorf("--x2: %w", err)
			}
			if _, err := a.selectTier(tier); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch kind {
			case "pooled":
				t, err := stats.TStat2(x1, x2)
				if err != nil {
					return err
				}
				a.printer.Fprintf(out, "t = %s, df = %d\n", sig(t, 6), len(x1)+len(x2)-2)
			case "welch":
				res, err := stats.WelchT(x1, x2)
				if err != nil {
					return err
				}
				a.printer.Fprintf(out, "t = %s, df = %s\n", sig(res.T, 6), sig(res.DF, 4))
			case "paired":
				t, err := stats.PairedT(x1, x2)
				if err != nil {
					return err
				}
				a.printer.Fprintf(out, "t = %s, df = %d\n", sig(t, 6), len(x1)-1)
			default:
				return fmt.Errorf("invalid kind %q: want pooled, welch or paired", kind)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tier, "tier", "", "Tier to request")
	cmd.Flags().StringVar(&x1s, "x1", "", "First sample, comma separated")
	cmd.Flags().StringVar(&x2s, "x2", "", "Second sample, comma separated")
	cmd.Flags().StringVar(&kind, "kind", "pooled", "Test kind: pooled, welch or paired")
	_ = cmd.MarkFlagRequired("x1")
	_ = cmd.MarkFlagRequired("x2")
	return cmd
}

func newDiDCmd(a *app) *cobra.Command {
	var tier string
	samples := make([]string, 4)
	names := []string{"x1", "x2", "y1", "y2"}

	cmd := &cobra.Command{
		Use:   "didt",
		Short: "Difference-in-differences t statistic of (x2-x1) against (y2-y1)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vals := make([][]float64, len(samples))
			for i, s := range samples {
				v, err := parseValues([]string{s})
				if err != nil {
					return fmt.Errorf("--%s: %w", names[i], err)
				}
				vals[i] = v
			}
			if _, err := a.selectTier(tier); err != nil {
				return err
			}

			t, err := stats.DiDT(vals[0], vals[1], vals[2], vals[3])
			if err != nil {
				return err
			}
			a.printer.Fprintf(cmd.OutOrStdout(), "t = %s, df = %d\n", sig(t, 6), len(vals[0])+len(vals[2])-2)
			return nil
		},
	}
	cmd.Flags().StringVar(&tier, "tier", "", "Tier to request")
	for i, name := range names {
		cmd.Flags().StringVar(&samples[i], name, "", "Sample "+name+", comma separated")
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newR2ZCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "r2z R...",
		Short: "Fisher r-to-z transform of correlation coefficients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				r, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid correlation %q: %w", arg, err)
				}
				a.printer.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", sig(r, -1), fixed(stats.FisherR2Z(r), 6))
			}
			return nil
		},
	}
}
