package cli

import (
	"fmt"

	"github.com/rpgo/nestegg/internal/calculation"
	"github.com/rpgo/nestegg/pkg/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type GlobalOptions struct {
	LogLevel string

	logger *zap.SugaredLogger
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		LogLevel: "info",
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Diagnostic log level written to stderr (debug, info, warn, error)")
}

// Complete builds the diagnostic logger on the command's stderr.
func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", o.LogLevel, err)
	}
	o.logger = log.New(cmd.ErrOrStderr(), lvl).Sugar()
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

// Logger returns the logger built by Complete, or a no-op logger before that.
func (o *GlobalOptions) Logger() calculation.Logger {
	if o.logger == nil {
		return calculation.NopLogger{}
	}
	return o.logger
}

func (o *GlobalOptions) sync() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
}
