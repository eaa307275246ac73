package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/db"
	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <sql>",
		Short: "Run read-only SQL against the chunk index",
		Long:  "Run a SELECT against the scans, chunks and texts tables. Rows are printed as JSON, one per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := EnsureIndex(cfg.DBPath); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}

			return runQuery(cmd, cfg.DBPath, args[0])
		},
	}
}

func runQuery(cmd *cobra.Command, dbPath, query string) error {
	// Read-only: only allow SELECT statements.
	normalized := strings.TrimSpace(strings.ToUpper(query))
	if !strings.HasPrefix(normalized, "SELECT") {
		return fmt.Errorf("only SELECT statements are allowed")
	}

	// Statements after a ';' run too, so the connection itself is read-only.
	d, err := db.OpenReadOnly(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer d.Close()

	rows, err := d.Query(query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("columns: %w", err)
	}

	out := cmd.OutOrStdout()
	first := true

	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("scan: %w", err)
		}

		row := make(map[string]interface{}, len(cols))
		for i, col := range cols {
			v := values[i]
			// Convert []byte to string and timestamps to RFC 3339 for JSON output.
			switch x := v.(type) {
			case []byte:
				v = string(x)
			case time.Time:
				v = x.UTC().Format(time.RFC3339)
			}
			row[col] = v
		}

		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}

		if !first {
			fmt.Fprintln(out)
		}
		fmt.Fprint(out, string(data))
		first = false
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows: %w", err)
	}

	// Trailing newline if we printed anything.
	if !first {
		fmt.Fprintln(out)
	}

	return nil
}
