package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runAgency string
	runStdout bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape a single agency",
	RunE: func(cmd *cobra.Command, args []string) error {
		if runAgency == "" {
			return eris.New("--agency is required")
		}

		e, err := initEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		p, ok := e.Registry.Get(runAgency)
		if !ok {
			return eris.Errorf("unknown agency %q (known: %v)", runAgency, e.Registry.Names())
		}

		ctx := cmd.Context()
		if err := e.Store.Migrate(ctx); err != nil {
			return err
		}

		result := e.Driver.Run(ctx, p)
		if err := e.Store.SaveAgency(ctx, result.Agency, result.Warnings); err != nil {
			return err
		}

		zap.L().Info("run saved",
			zap.String("agency", result.Agency.AgencyName),
			zap.Int("warnings", len(result.Warnings)),
		)

		if runStdout {
			out, err := json.MarshalIndent(result.Agency, "", "  ")
			if err != nil {
				return eris.Wrap(err, "marshal record")
			}
			fmt.Fprintln(os.Stdout, string(out))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runAgency, "agency", "", "agency profile name (required)")
	runCmd.Flags().BoolVar(&runStdout, "stdout", false, "also print the record as JSON")
	rootCmd.AddCommand(runCmd)
}
