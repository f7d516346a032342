package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X github.com/rpgo/nestegg/internal/cli.Version=...".
var Version = "dev"

func NewCmdVersion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print nestegg version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd.Context(), cmd.OutOrStdout())
		},
	}
	return cmd
}

func runVersion(ctx context.Context, w io.Writer) error {
	_, err := fmt.Fprintf(w, "nestegg version %s\n", Version)
	return err
}
