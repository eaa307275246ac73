package cli

import (
	"fmt"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/db"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent scans from the index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := EnsureIndex(cfg.DBPath); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}

			d, err := db.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer d.Close()

			scans, err := db.RecentScans(d, limit)
			if err != nil {
				return fmt.Errorf("read scans: %w", err)
			}
			if len(scans) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No scans yet. Run 'pngchunk index <file>'.")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, s := range scans {
				fmt.Fprintf(out, "%s  %s  %s  %d chunks", s.ID, s.ScannedAt.Local().Format("2006-01-02 15:04:05"), s.Path, s.ChunkCount)
				if s.TrailingBytes > 0 {
					fmt.Fprintf(out, "  +%d trailing", s.TrailingBytes)
				}
				if s.Error != "" {
					fmt.Fprintf(out, "  error: %s", s.Error)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries to show")
	return cmd
}
