package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/db"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the chunk index database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := initIndex(cfg.DBPath); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Index initialized at %s.\n", cfg.DBPath)
			return nil
		},
	}
}

// initIndex creates the index at path. Re-running starts from an empty index.
func initIndex(path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove old index: %w", err)
		}
		// DuckDB keeps a write-ahead log beside the database file.
		_ = os.Remove(path + ".wal")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	d, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer d.Close()

	if err := db.InitSchema(d); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
