package cli

import (
	"errors"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"runfile/internal/app"
	"runfile/internal/shared"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "RUNFILE"

type RootConfig struct {
	LogLevel string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "runfile",
		Short:   "Project script and test runner",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initConfig()
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newTestCommand())
	return cmd
}

func newAppService() app.Service {
	return app.NewService()
}

// initConfig wires env overrides and optional tool-level defaults. The
// defaults file lives under the user config dir only; the project's own
// runfile.yaml is never read as tool config.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetConfigName("runfile")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.config/runfile")
	_ = viper.ReadInConfig()
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	var exit shared.ExitStatusError
	if errors.As(err, &exit) {
		return exit.Status
	}
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition, errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
