package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the root command for the pngchunk CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pngchunk",
		Short:         "pngchunk — read, verify and write PNG chunk streams",
		Long:          "pngchunk validates PNG chunk framing and checksums, decodes text metadata (tEXt, zTXt, iTXt) and builds chunk streams from YAML manifests.",
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	addConfigFlags(cmd)

	cmd.SetVersionTemplate("pngchunk {{.Version}}\n")
	cmd.Version = Version

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newTextCmd())
	cmd.AddCommand(newPackCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newLogCmd())
	cmd.AddCommand(newQueryCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "pngchunk", Version)
			return nil
		},
	}
}

// Run executes the root command and exits with the appropriate code.
func Run() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !IsSilentError(err) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		}
		os.Exit(1)
	}
}
