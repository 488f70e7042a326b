package main

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/dukaforge/salesmart/internal/pipeline"
	"github.com/dukaforge/salesmart/internal/source"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full warehouse rebuild",
	Long: `Extract the source collections, rebuild the star schema, and load
dimensions and facts. The destination file is deleted and recreated.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.New(cmd.OutOrStdout(), "", log.LstdFlags)
	ctx := context.Background()

	logger.Printf("Connecting to MongoDB...")
	src, err := source.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer src.Close(ctx)

	err = pipeline.New(cfg, src, logger).Run(ctx)
	if errors.Is(err, pipeline.ErrNoSourceData) {
		// Insufficient source data is a clean stop, not a failure.
		return nil
	}
	return err
}
