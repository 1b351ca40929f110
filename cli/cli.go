// Package cli implements the susy-xs command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/misho104/SUSY-crosssection/core"
	"github.com/misho104/SUSY-crosssection/reader"
)

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "susy-xs",
		Short:         "Annotated grid tables with uncertainty-aware interpolation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				core.SetLogger(core.NewStderrLogger(slog.LevelDebug))
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(newShowCommand())
	root.AddCommand(newGetCommand())

	return root
}

// loadTable reads the annotation file and materializes the grid table,
// choosing the source by the data file extension.
func loadTable(dataPath, infoPath string) (*reader.Table, error) {
	info, err := core.LoadTableInfo(infoPath)
	if err != nil {
		return nil, fmt.Errorf("load annotations: %w", err)
	}

	var src reader.Source
	switch strings.ToLower(filepath.Ext(dataPath)) {
	case ".db", ".sqlite", ".sqlite3":
		sqliteSrc, err := reader.NewSQLite(dataPath)
		if err != nil {
			return nil, err
		}
		defer sqliteSrc.Close()
		src = sqliteSrc
	default:
		src = reader.NewCSV(dataPath)
	}

	table, err := reader.Load(info, src)
	if err != nil {
		return nil, fmt.Errorf("load table: %w", err)
	}
	return table, nil
}

// pickValue resolves the requested value column, falling back to the only
// one when the table has a single value.
func pickValue(table *reader.Table, value string) (string, error) {
	names := table.ValueNames()
	if value != "" {
		if _, err := table.Frame(value); err != nil {
			return "", err
		}
		return value, nil
	}
	if len(names) == 1 {
		return names[0], nil
	}
	return "", fmt.Errorf("table has %d value columns, select one with --value (%s)",
		len(names), strings.Join(names, ", "))
}

// parseNamedParams splits repeated name=value flags.
func parseNamedParams(raw []string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	named := make(map[string]float64, len(raw))
	for _, entry := range raw {
		name, value, found := strings.Cut(entry, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected name=value", entry)
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter %q: %s", entry, err)
		}
		named[name] = parsed
	}
	return named, nil
}
