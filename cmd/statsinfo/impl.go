package main

import (
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/viterin/vek"

	"github.com/cwbudde/algo-stats/internal/cpu"
	"github.com/cwbudde/algo-stats/internal/dispatch"
	"github.com/cwbudde/algo-stats/internal/kernel/registry"
)

func newImplCmd(a *app) *cobra.Command {
	var tier string
	cmd := &cobra.Command{
		Use:   "impl",
		Short: "Show detected CPU features and the installed kernel per slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.selectTier(tier); err != nil {
				return err
			}
			return a.printImpl(cmd)
		},
	}
	cmd.Flags().StringVar(&tier, "tier", "", "Tier to request (naive, sse2, avx, avxfma, avx512, avx512fma, auto)")
	return cmd
}

func (a *app) printImpl(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	f := cpu.DetectFeatures()
	tbl := dispatch.Current()

	model := f.Model
	if model == "" {
		model = "unknown"
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	a.printer.Fprintf(tw, "CPU\t%s\n", model)
	a.printer.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	a.printer.Fprintf(tw, "Features\t%s\n", featureList(f))
	a.printer.Fprintf(tw, "Best entry\t%s\n", bestEntry(f))
	a.printer.Fprintf(tw, "Installed\t%s\n", tbl.Tier)
	a.printer.Fprintf(tw, "vek\t%s\n", vekStatus())
	if err := tw.Flush(); err != nil {
		return err
	}

	a.printer.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	a.printer.Fprintf(tw, "SLOT\tORIGIN\n")
	for _, op := range dispatch.Ops() {
		a.printer.Fprintf(tw, "%s\t%s\n", op, tbl.Origin(op))
	}
	return tw.Flush()
}

// bestEntry names the highest-priority registered tier the CPU can run,
// regardless of any configured cap.
func bestEntry(f cpu.Features) string {
	e := registry.Global.Lookup(f)
	if e == nil {
		return "none"
	}
	return e.Name
}

type featureFlag struct {
	name string
	on   bool
}

func featureList(f cpu.Features) string {
	flags := []featureFlag{
		{"SSE2", f.HasSSE2},
		{"AVX", f.HasAVX},
		{"FMA", f.HasFMA},
		{"AVX-512F", f.HasAVX512},
		{"NEON", f.HasNEON},
	}
	names := lo.FilterMap(flags, func(x featureFlag, _ int) (string, bool) {
		return x.name, x.on
	})
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, " ")
}

func vekStatus() string {
	info := vek.Info()
	if !info.Acceleration {
		return "pure go"
	}
	return "accelerated (" + strings.Join(info.CPUFeatures, ", ") + ")"
}
