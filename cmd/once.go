package cmd

import (
	"errors"
	"log/slog"

	"adcraft/internal/app"
	"adcraft/internal/library"
	"adcraft/pkg/config"

	"github.com/spf13/cobra"
)

var (
	oncePrompt     string
	onceUseTwitter bool
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Generate a single ad",
	Long:  `Generate a single ad from a prompt or from trending Twitter content.`,
	RunE:  runOnce,
}

func init() {
	onceCmd.Flags().StringVarP(&oncePrompt, "prompt", "p", "", "Prompt for ad generation")
	onceCmd.Flags().BoolVarP(&onceUseTwitter, "twitter", "t", false, "Generate ad from trending Twitter content")
	rootCmd.AddCommand(onceCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	if oncePrompt == "" && !onceUseTwitter {
		return errors.New("please provide --prompt or --twitter")
	}

	ctx := cmd.Context()
	cfg := config.Load()

	service, err := app.BuildService(ctx, cfg)
	if err != nil {
		return err
	}

	var record library.AdRecord
	if onceUseTwitter {
		slog.Info("Generating ad from trending content...")
		record, err = service.GenerateFromTrends(ctx)
	} else {
		slog.Info("Generating ad...", "prompt", oncePrompt)
		record, err = service.GenerateFromPrompt(ctx, oncePrompt)
	}

	if err != nil {
		return err
	}

	slog.Info("Ad generated",
		"id", record.ID,
		"score", record.ViralityScore,
		"assessment", record.ViralityAssessment,
		"video", record.VideoFile,
	)

	return nil
}
