package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/misho104/SUSY-crosssection/interpolate"
)

func newGetCommand() *cobra.Command {
	var (
		value    string
		kind     string
		axes     string
		uncLevel float64
		params   []string
	)

	cmd := &cobra.Command{
		Use:   "get <data-file> <info-json> [parameter...]",
		Short: "Interpolate a value with uncertainties at the given point",
		Long: `Interpolate a value with uncertainties at the given point.

Parameters are given positionally as plain numbers or by name with
repeated --param flags; both can be mixed.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(args[0], args[1])
			if err != nil {
				return err
			}

			name, err := pickValue(table, value)
			if err != nil {
				return err
			}
			frame, err := table.Frame(name)
			if err != nil {
				return err
			}

			point := interpolate.Point{}
			for _, arg := range args[2:] {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid parameter value %q: %s", arg, err)
				}
				point.Pos = append(point.Pos, x)
			}
			point.Named, err = parseNamedParams(params)
			if err != nil {
				return err
			}

			interpolator, err := interpolate.NewOneDim(
				interpolate.WithKind(kind),
				interpolate.WithAxes(axes),
			)
			if err != nil {
				return err
			}

			fit, err := interpolator.Interpolate(frame)
			if err != nil {
				return fmt.Errorf("interpolator.Interpolate: %w", err)
			}

			unit := ""
			if column, err := table.Info().GetColumn(name); err == nil && column.Unit != "" {
				unit = " " + column.Unit
			}

			out := cmd.OutOrStdout()
			if uncLevel != 0 {
				v, err := fit.Eval(point, interpolate.WithUncLevel(uncLevel))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%.6g%s\n", v, unit)
				return nil
			}

			band, err := fit.BandAt(point)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%.6g +%.3g %.3g%s\n", band.Central, band.UncP, band.UncM, unit)

			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "value column to interpolate")
	cmd.Flags().StringVar(&kind, "kind", "linear", "fit kind, e.g. linear or cubic")
	cmd.Flags().StringVar(&axes, "axes", "linear", "axis scales: linear, log, loglinear or loglog")
	cmd.Flags().Float64Var(&uncLevel, "unc-level", 0, "report the value shifted by this many uncertainty bands")
	cmd.Flags().StringArrayVar(&params, "param", nil, "named parameter as name=value (repeatable)")

	return cmd
}
