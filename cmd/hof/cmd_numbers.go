package main

import (
	"fmt"

	"github.com/sghaida/hof/hof"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) compareCmd() *cobra.Command {
	var (
		gt    int
		where string
	)
	cmd := &cobra.Command{
		Use:   "compare [values...]",
		Short: "Check each value against a greaterThan predicate",
		Long: `Builds greaterThan(N) and applies it to every value.

Flags must come before values. Use -- when the first value is negative.

Example:
  hof compare --gt 10 5 11
  hof compare --gt 0 -- -5 5
  hof compare --where gt100 99 101`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("gt") {
				gt = a.cfg.Threshold
			}

			label := fmt.Sprintf("> %d", gt)
			pred := hof.GreaterThan(gt)
			if where != "" {
				pred, err = hof.NumberRegistry().Resolve(where)
				if err != nil {
					return err
				}
				label = where
			}
			a.logger.Debug("compare", zap.String("predicate", label), zap.Ints("values", values))

			out := cmd.OutOrStdout()
			for _, v := range values {
				fmt.Fprintf(out, "%d %s: %t\n", v, label, pred(v))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&gt, "gt", 10, "threshold for greaterThan; defaults to HOF_THRESHOLD")
	cmd.Flags().StringVar(&where, "where", "", "named predicate (gt10|gt100); overrides --gt")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) scaleCmd() *cobra.Command {
	var (
		by int
		fn string
	)
	cmd := &cobra.Command{
		Use:   "scale [values...]",
		Short: "Multiply each value using a multiplyBy factory",
		Long: `Builds multiplyBy(N) and maps it over every value.

Flags must come before values. Use -- when the first value is negative.

Example:
  hof scale --by 3 1 2 3
  hof scale --by 3 -- 1 2 -3
  hof scale --fn quadruple 1 2 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("by") {
				by = a.cfg.Factor
			}

			f := hof.MultiplyBy(by)
			if fn != "" {
				named, ok := hof.NumberRegistry().Func(fn)
				if !ok {
					return hof.UnknownNameError{Name: fn}
				}
				f = named
			}
			a.logger.Debug("scale", zap.Int("by", by), zap.String("fn", fn), zap.Int("count", len(values)))

			out := cmd.OutOrStdout()
			for _, v := range hof.Map(values, f) {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&by, "by", 3, "factor for multiplyBy; defaults to HOF_FACTOR")
	cmd.Flags().StringVar(&fn, "fn", "", "named transform (triple|quadruple); overrides --by")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) whenCmd() *cobra.Command {
	var (
		value int
		gt    int
		say   string
	)
	cmd := &cobra.Command{
		Use:   "when",
		Short: "Print a message only when value > threshold",
		Long: `Runs doWhen(greaterThan(N)(V), print MSG).

Example:
  hof when --value 11 --gt 10 --say hey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("gt") {
				gt = a.cfg.Threshold
			}
			ran := false
			hof.DoWhen(hof.GreaterThan(gt)(value), func() {
				ran = true
				fmt.Fprintln(cmd.OutOrStdout(), say)
			})
			a.logger.Debug("when", zap.Int("value", value), zap.Int("gt", gt), zap.Bool("ran", ran))
			return nil
		},
	}
	cmd.Flags().IntVar(&value, "value", 0, "value to test")
	cmd.Flags().IntVar(&gt, "gt", 10, "threshold; defaults to HOF_THRESHOLD")
	cmd.Flags().StringVar(&say, "say", "hey", "message to print when the condition holds")
	return cmd
}
