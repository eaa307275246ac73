package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/codec"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func newInspectCmd() *cobra.Command {
	var (
		asJSON bool
		stats  bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "List the chunks of a PNG file or chunk stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			data, err := readInput(args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}

			chunks, trailing, err := codec.Scan(data, hasSignature(data))
			out := cmd.OutOrStdout()
			if asJSON {
				if werr := writeInspectJSON(out, chunks); werr != nil {
					return werr
				}
			} else {
				if werr := writeInspectTable(out, chunks); werr != nil {
					return werr
				}
			}
			if stats && len(chunks) > 0 {
				writeLengthStats(out, chunks)
			}
			if trailing > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d bytes after IEND\n", trailing)
			}
			if err != nil {
				err = fmt.Errorf("%s: %w", args[0], err)
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return NewSilentError(err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per chunk")
	cmd.Flags().BoolVar(&stats, "stats", false, "Print payload length statistics")
	return cmd
}

func crcStatus(s codec.ChunkSlice) string {
	if s.CRCValid {
		return "ok"
	}
	return "BAD"
}

func writeInspectTable(w io.Writer, chunks []codec.ChunkSlice) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tTYPE\tLENGTH\tFLAGS\tCRC")
	for _, s := range chunks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%08x %s\n", s.Offset, s.Type, s.Length, s.Type.Flags(), s.CRC, crcStatus(s))
	}
	return tw.Flush()
}

type inspectRow struct {
	Offset     int    `json:"offset"`
	Type       string `json:"type"`
	Length     int    `json:"length"`
	Ancillary  bool   `json:"ancillary"`
	Private    bool   `json:"private"`
	SafeToCopy bool   `json:"safe_to_copy"`
	CRC        uint32 `json:"crc"`
	CRCValid   bool   `json:"crc_ok"`
}

func writeInspectJSON(w io.Writer, chunks []codec.ChunkSlice) error {
	enc := json.NewEncoder(w)
	for _, s := range chunks {
		row := inspectRow{
			Offset:     s.Offset,
			Type:       s.Type.String(),
			Length:     s.Length,
			Ancillary:  s.Type.Ancillary(),
			Private:    s.Type.Private(),
			SafeToCopy: s.Type.SafeToCopy(),
			CRC:        s.CRC,
			CRCValid:   s.CRCValid,
		}
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
	}
	return nil
}

func writeLengthStats(w io.Writer, chunks []codec.ChunkSlice) {
	lengths := make([]float64, len(chunks))
	for i, s := range chunks {
		lengths[i] = float64(s.Length)
	}
	sort.Float64s(lengths)

	mean, std := stat.MeanStdDev(lengths, nil)
	if len(lengths) < 2 {
		std = 0
	}
	median := stat.Quantile(0.5, stat.Empirical, lengths, nil)
	fmt.Fprintf(w, "chunks: %d  mean: %.1f  stddev: %.1f  median: %.0f  max: %.0f\n",
		len(lengths), mean, std, median, floats.Max(lengths))
}
