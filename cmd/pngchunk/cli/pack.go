package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/manifest"
	"github.com/spf13/cobra"
)

func newPackCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "pack <manifest.yaml>",
		Short: "Build a chunk stream from a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, err := runPack(args[0], cfg)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s.\n", len(out), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// runPack parses the manifest at path and encodes it. A relative source path
// is resolved against the manifest's directory. The configured compression
// level applies when the manifest does not set one.
func runPack(path string, cfg *Config) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Level == "" {
		m.Level = cfg.Level.String()
	}

	var source []byte
	if m.Source != "" {
		src := m.Source
		if !filepath.IsAbs(src) {
			src = filepath.Join(filepath.Dir(path), src)
		}
		source, err = readInput(src)
		if err != nil {
			return nil, err
		}
	}

	out, err := manifest.Build(m, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
