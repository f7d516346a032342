package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rpgo/nestegg/internal/config"
	"github.com/rpgo/nestegg/internal/output"
	"github.com/spf13/cobra"
)

type ExampleConfigOptions struct {
	*GlobalOptions
}

func NewCmdExampleConfig(global *GlobalOptions) *cobra.Command {
	o := &ExampleConfigOptions{GlobalOptions: global}
	cmd := &cobra.Command{
		Use:     "example-config FILE",
		Short:   "Write the default projection parameters as a YAML file",
		Example: "  nestegg example-config projection.yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), cmd.OutOrStdout(), args)
		},
		SilenceUsage: true,
	}
	return cmd
}

func (o *ExampleConfigOptions) Run(ctx context.Context, w io.Writer, args []string) error {
	filename := args[0]
	if err := output.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), filename); err != nil {
		return fmt.Errorf("failed to write example configuration: %w", err)
	}
	o.Logger().Debugf("example configuration written to %s", filename)
	fmt.Fprintf(w, "Example configuration written to %s\n", filename)
	return nil
}
