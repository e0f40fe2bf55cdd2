// Package cli implements the factorykit command line tool.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/factorykit/pkg/factorykit"
	"github.com/randalmurphal/factorykit/pkg/factorykit/builder"
	"github.com/randalmurphal/factorykit/pkg/factorykit/car"
	"github.com/randalmurphal/factorykit/pkg/factorykit/document"
	"github.com/randalmurphal/factorykit/pkg/factorykit/observability"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Settings keys.
const (
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
	keyTracingEnabled = "tracing.enabled"
)

const envPrefix = "FACTORYKIT"

// app is the state shared by every subcommand of one root command.
type app struct {
	v        *viper.Viper
	cfgFile  string
	logger   *slog.Logger
	opts     []factorykit.Option
	shutdown func(context.Context) error

	formats  *factorykit.Registry[document.Creator]
	brands   *factorykit.Registry[car.Factory]
	builders *factorykit.Registry[builder.Builder]
}

// NewRootCommand returns the factorykit command tree with its own settings.
func NewRootCommand(version string) *cobra.Command {
	a := &app{
		v:        viper.New(),
		formats:  factorykit.NewRegistry[document.Creator]("formats"),
		brands:   factorykit.NewRegistry[car.Factory]("brands"),
		builders: factorykit.NewRegistry[builder.Builder]("builders"),
	}

	root := &cobra.Command{
		Use:   "factorykit",
		Short: "Create objects through registered factories",
		Long: `factorykit resolves creators by key from its registries and drives them:
document formats (factory method), car brands (abstract factory) and car
builders (builder with a director).

Settings are read from --config, then FACTORYKIT_* environment variables,
then flags. Example:
  FACTORYKIT_LOG_LEVEL=debug factorykit build Bmw`,
		Version:            version,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml or json)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("tracing", false, "export dispatch spans to stderr")

	_ = a.v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(keyLogFormat, flags.Lookup("log-format"))
	_ = a.v.BindPFlag(keyTracingEnabled, flags.Lookup("tracing"))

	root.AddCommand(
		a.editCommand(),
		a.suvCommand(),
		a.coupeCommand(),
		a.buildCommand(),
		a.convertCommand(),
		a.listCommand(),
	)
	return root
}

// Execute runs the root command against the process arguments.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v.SetDefault(keyLogLevel, "warn")
	a.v.SetDefault(keyLogFormat, "text")
	a.v.SetDefault(keyTracingEnabled, false)
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger, err := observability.NewLogger(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel), a.v.GetString(keyLogFormat))
	if err != nil {
		return err
	}
	a.logger = logger
	a.opts = append(a.opts, factorykit.WithLogger(logger))

	if a.v.GetBool(keyTracingEnabled) {
		shutdown, err := observability.InstallStdoutTracing(cmd.ErrOrStderr(), "factorykit")
		if err != nil {
			return fmt.Errorf("starting tracing: %w", err)
		}
		a.shutdown = shutdown
		a.opts = append(a.opts,
			factorykit.WithTracing(observability.NewSpanManager()),
			factorykit.WithMetrics(observability.NewMetricsRecorder()),
		)
	}

	a.registerBuiltins()
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.shutdown == nil {
		return nil
	}
	return a.shutdown(cmd.Context())
}

func (a *app) registerBuiltins() {
	document.RegisterBuiltins(a.formats)
	car.RegisterBuiltins(a.brands)
	builder.RegisterBuiltins(a.builders)

	for _, keys := range []struct {
		registry string
		keys     []string
	}{
		{a.formats.Name(), a.formats.Keys()},
		{a.brands.Name(), a.brands.Keys()},
		{a.builders.Name(), a.builders.Keys()},
	} {
		for _, k := range keys.keys {
			observability.LogRegister(a.logger, keys.registry, k)
		}
	}
}
