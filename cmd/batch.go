package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	batchAgencies    []string
	batchConcurrency int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Scrape multiple agencies concurrently",
	Long:  "Runs the named agencies (or all registered profiles) with bounded concurrency. A failed save aborts the batch; scrape-level problems only produce warnings on the record.",
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

		names := batchAgencies
		if len(names) == 0 {
			names = e.Registry.Names()
		}

		concurrency := batchConcurrency
		if concurrency == 0 {
			concurrency = cfg.Batch.MaxConcurrentAgencies
		}

		zap.L().Info("starting batch", zap.Int("agencies", len(names)), zap.Int("concurrency", concurrency))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for _, name := range names {
			p, ok := e.Registry.Get(name)
			if !ok {
				zap.L().Warn("skipping unknown agency", zap.String("agency", name))
				continue
			}
			g.Go(func() error {
				result := e.Driver.Run(gctx, p)
				return e.Store.SaveAgency(gctx, result.Agency, result.Warnings)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		zap.L().Info("batch complete", zap.Int("agencies", len(names)))
		return nil
	},
}

func init() {
	batchCmd.Flags().StringSliceVar(&batchAgencies, "agencies", nil, "agency names (default: all registered)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max concurrent agencies (default from config)")
	rootCmd.AddCommand(batchCmd)
}
