package cli

import (
	"fmt"
	"io"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/codec"
	"github.com/spf13/cobra"
)

func newTextCmd() *cobra.Command {
	var skipInvalid bool

	cmd := &cobra.Command{
		Use:   "text <file>",
		Short: "Print the tEXt, zTXt and iTXt metadata of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}

			chunks, err := codec.Decode(data, codec.DecodeOptions{
				Signature:   hasSignature(data),
				SkipInvalid: skipInvalid,
				Logger:      newLogger(cmd.ErrOrStderr(), cfg.LogLevel),
			})
			for _, c := range chunks {
				writeTextChunk(cmd.OutOrStdout(), c)
			}
			if err != nil {
				err = fmt.Errorf("%s: %w", args[0], err)
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip chunks whose payload fails to decode")
	return cmd
}

// writeTextChunk prints c as "key: value" when it carries text. iTXt keys
// are followed by the language tag in brackets.
func writeTextChunk(w io.Writer, c codec.Chunk) {
	switch c := c.(type) {
	case *codec.Text:
		fmt.Fprintf(w, "%s: %s\n", c.Key, c.Val)
	case *codec.CompressedText:
		fmt.Fprintf(w, "%s: %s\n", c.Key, c.Val)
	case *codec.InternationalText:
		if c.LangTag != "" {
			fmt.Fprintf(w, "%s[%s]: %s\n", c.Key, c.LangTag, c.Val)
		} else {
			fmt.Fprintf(w, "%s: %s\n", c.Key, c.Val)
		}
	}
}
