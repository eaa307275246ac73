package cli

import (
	"fmt"
	"io"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/codec"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	var (
		skipInvalid bool
		trailing    string
		maxText     int
	)

	cmd := &cobra.Command{
		Use:   "verify <file>...",
		Short: "Decode every chunk and check framing, checksums and payloads",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			policy, err := codec.ParseTrailingPolicy(trailing)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

			failed := 0
			for _, path := range args {
				data, err := readInput(path)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					failed++
					continue
				}

				dec := codec.NewDecoder(data, codec.DecodeOptions{
					Signature:   hasSignature(data),
					SkipInvalid: skipInvalid,
					Trailing:    policy,
					MaxTextSize: maxText,
					Logger:      logger,
				})
				n, err := drain(dec)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
					failed++
					continue
				}

				if skipped := len(dec.Skipped()); skipped > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d chunks, %d skipped)\n", path, n, skipped)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d chunks)\n", path, n)
				}
			}

			if failed > 0 {
				return NewSilentError(&FilesFailedError{Failed: failed, Total: len(args)})
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip chunks whose payload fails to decode")
	cmd.Flags().StringVar(&trailing, "trailing", "ignore", "Data after IEND: ignore, warn or error")
	cmd.Flags().IntVar(&maxText, "max-text", codec.DefaultMaxTextSize, "Max decompressed text size in bytes (negative = unlimited)")
	return cmd
}

// drain decodes every chunk of dec and returns how many were produced.
func drain(dec *codec.Decoder) (int, error) {
	n := 0
	for {
		_, err := dec.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}
