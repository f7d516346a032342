package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rpgo/nestegg/internal/calculation"
	"github.com/rpgo/nestegg/internal/config"
	"github.com/rpgo/nestegg/internal/domain"
	"github.com/rpgo/nestegg/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type ProjectOptions struct {
	*GlobalOptions
	ConfigFile string
	Format     string
}

func DefaultProjectOptions(global *GlobalOptions) *ProjectOptions {
	return &ProjectOptions{
		GlobalOptions: global,
		Format:        "console",
	}
}

// NewCmdRoot returns the nestegg command. Without flags it projects the
// built-in parameter set and prints the console report.
func NewCmdRoot() *cobra.Command {
	global := DefaultGlobalOptions()
	o := DefaultProjectOptions(&global)
	cmd := &cobra.Command{
		Use:   "nestegg [flags]",
		Short: "Project savings growth to retirement and the withdrawal that depletes them",
		Example: "  nestegg\n" +
			"  nestegg --config projection.yaml --format json",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return global.Complete(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer global.sync()
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	global.Bind(cmd.PersistentFlags())
	o.Bind(cmd.Flags())

	cmd.AddCommand(NewCmdExampleConfig(&global))
	cmd.AddCommand(NewCmdVersion())
	return cmd
}

func (o *ProjectOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.ConfigFile, "config", "c", "", "YAML file with the projection parameters. Defaults to the built-in set")
	fs.StringVarP(&o.Format, "format", "f", o.Format, fmt.Sprintf("Report format. One of: %v", output.AvailableFormatterNames()))
}

func (o *ProjectOptions) Validate(args []string) error {
	if output.GetFormatterByName(o.Format) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, o.Format)
	}
	return nil
}

func (o *ProjectOptions) Run(ctx context.Context, w io.Writer) error {
	params, err := o.parameters()
	if err != nil {
		return err
	}

	engine := calculation.NewProjectionEngine()
	engine.SetLogger(o.Logger())
	result, err := engine.Compute(params)
	if err != nil {
		return err
	}
	return output.GenerateReport(w, result, o.Format)
}

func (o *ProjectOptions) parameters() (domain.Parameters, error) {
	if o.ConfigFile == "" {
		return domain.DefaultParameters(), nil
	}
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(o.ConfigFile)
	if err != nil {
		return domain.Parameters{}, err
	}
	o.Logger().Debugf("loaded projection parameters from %s", o.ConfigFile)
	return parser.Parameters(cfg)
}
