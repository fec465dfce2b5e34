package main

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/inhuren/agency-scraper/internal/model"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored records to xlsx or json",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := initEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		if err := e.Store.Migrate(ctx); err != nil {
			return err
		}

		agencies, err := e.Store.ListAgencies(ctx)
		if err != nil {
			return err
		}
		if len(agencies) == 0 {
			return eris.New("no stored records to export")
		}

		switch exportFormat {
		case "xlsx":
			err = exportXLSX(agencies, exportOut)
		case "json":
			err = exportJSON(agencies, exportOut)
		default:
			err = eris.Errorf("unknown export format %q", exportFormat)
		}
		if err != nil {
			return err
		}

		zap.L().Info("export complete",
			zap.String("format", exportFormat),
			zap.String("path", exportOut),
			zap.Int("agencies", len(agencies)),
		)
		return nil
	},
}

// exportXLSX writes one row per agency using the flat field-path columns.
// Columns are sorted so re-exports diff cleanly.
func exportXLSX(agencies []model.Agency, path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("agencies")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	columns := flatColumns(agencies[0])

	header := sheet.AddRow()
	for _, col := range columns {
		header.AddCell().SetString(col)
	}

	for _, agency := range agencies {
		flat := agency.Flat()
		row := sheet.AddRow()
		for _, col := range columns {
			cell := row.AddCell()
			switch v := flat[col].(type) {
			case nil:
				// empty cell
			case []string:
				cell.SetString(strings.Join(v, "; "))
			case string:
				cell.SetString(v)
			default:
				cell.SetValue(v)
			}
		}
	}

	return eris.Wrapf(file.Save(path), "export: save %s", path)
}

func exportJSON(agencies []model.Agency, path string) error {
	data, err := json.MarshalIndent(agencies, "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal")
	}
	return eris.Wrapf(os.WriteFile(path, append(data, '\n'), 0o644), "export: write %s", path)
}

func flatColumns(a model.Agency) []string {
	flat := a.Flat()
	columns := make([]string, 0, len(flat))
	for k := range flat {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return columns
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "output format: xlsx or json")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (required)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}
