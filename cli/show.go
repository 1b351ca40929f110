package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misho104/SUSY-crosssection/core"
	"github.com/misho104/SUSY-crosssection/core/format"
)

func newShowCommand() *cobra.Command {
	var (
		formatName string
		value      string
	)

	cmd := &cobra.Command{
		Use:   "show <data-file> <info-json>",
		Short: "Display the annotations and content of a grid table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var formatter core.Formatter
			switch formatName {
			case "table":
				formatter = format.NewTable()
			case "json":
				formatter = format.NewJSON()
			case "csv":
				formatter = format.NewCSV()
			default:
				return fmt.Errorf("show output: %q is not supported", formatName)
			}

			table, err := loadTable(args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, table.Info().Dump())

			names := table.ValueNames()
			if value != "" {
				names = []string{value}
			}
			for _, name := range names {
				frame, err := table.Frame(name)
				if err != nil {
					return err
				}

				rendered, err := formatter.Format(frame.Header(), frame.Rows(), &core.FormatterOptions{})
				if err != nil {
					return fmt.Errorf("formatter.Format: %w", err)
				}

				fmt.Fprintf(out, "\n[%s]\n%s\n", name, rendered)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "table", "output format: table, json or csv")
	cmd.Flags().StringVar(&value, "value", "", "show only the given value column")

	return cmd
}
