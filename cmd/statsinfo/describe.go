package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"github.com/cwbudde/algo-stats/stats"
)

func newDescribeCmd(a *app) *cobra.Command {
	var (
		tier      string
		precision int
	)
	cmd := &cobra.Command{
		Use:   "describe [values...]",
		Short: "Print summary statistics of a sample read from arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				vals []float64
				err  error
			)
			if len(args) > 0 {
				vals, err = parseValues(args)
			} else {
				vals, err = readValues(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			installed, err := a.selectTier(tier)
			if err != nil {
				return err
			}

			switch precision {
			case 32:
				return describe(a.printer, cmd.OutOrStdout(), installed, toFloat32(vals))
			case 64:
				return describe(a.printer, cmd.OutOrStdout(), installed, vals)
			default:
				return fmt.Errorf("invalid precision %d: want 32 or 64", precision)
			}
		},
	}
	cmd.Flags().StringVar(&tier, "tier", "", "Tier to request")
	cmd.Flags().IntVar(&precision, "precision", 64, "Sample precision in bits (32 or 64)")
	return cmd
}

func describe[T stats.Float](p *message.Printer, out io.Writer, tier stats.Tier, a []T) error {
	s, err := stats.Sum(a)
	if err != nil {
		return err
	}
	m, err := stats.Mean(a)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	p.Fprintf(tw, "tier\t%s\n", tier)
	p.Fprintf(tw, "n\t%d\n", len(a))
	p.Fprintf(tw, "sum\t%s\n", sig(s, 6))
	p.Fprintf(tw, "mean\t%s\n", sig(m, 6))

	rows := []struct {
		name string
		fn   func([]T) (T, error)
	}{
		{"variance", stats.Variance[T]},
		{"std", stats.Std[T]},
		{"t", stats.TStat[T]},
	}
	for _, r := range rows {
		v, err := r.fn(a)
		switch {
		case errors.Is(err, stats.ErrTooFewSamples):
			p.Fprintf(tw, "%s\t-\n", r.name)
		case err != nil:
			return err
		default:
			p.Fprintf(tw, "%s\t%s\n", r.name, sig(v, 6))
		}
	}

	if a32, ok := any(a).([]float32); ok {
		ms, err := stats.MixedSum(a32)
		if err != nil {
			return err
		}
		p.Fprintf(tw, "mixed sum\t%s\n", sig(ms, 9))
	}
	return tw.Flush()
}
