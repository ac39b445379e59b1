package cmd

import (
	"fmt"
	"log/slog"

	"adcraft/internal/library"
	"adcraft/pkg/config"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the ad library",
	Long:  `Remove all generated ads and media from the local library and the GCS mirror.`,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	lib := library.New(cfg.Library.Dir)
	records, err := lib.List()
	if err != nil {
		return fmt.Errorf("list ads: %w", err)
	}

	if err := lib.Clear(); err != nil {
		return err
	}

	if cfg.MirrorEnabled() {
		mirror, err := library.NewGCSMirror(ctx, cfg.GCSBucket, cfg.GCS.Prefix)
		if err != nil {
			slog.Warn("GCS mirror unavailable, cleared local library only", "error", err)
		} else {
			defer func() { _ = mirror.Close() }()
			if err := mirror.Clear(ctx); err != nil {
				return fmt.Errorf("clear GCS mirror: %w", err)
			}
		}
	}

	fmt.Printf("Cleared %d ad(s) from library\n", len(records))
	return nil
}
