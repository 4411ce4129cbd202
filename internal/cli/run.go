package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"runfile/internal/app"
	"runfile/internal/shared"
)

type runOptions struct {
	Dir    string
	Config string
}

func newRunCommand() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a script defined in the project config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Project directory")
	cmd.Flags().StringVar(&opts.Config, "config", "", "Config file path (skips discovery)")
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("config", cmd.Flags().Lookup("config"))
	return cmd
}

func runRun(ctx context.Context, cmd *cobra.Command, opts runOptions, script string) error {
	service := newAppService()
	result, err := service.Run(ctx, app.RunRequest{
		Dir:        resolveString(cmd, opts.Dir, "dir", "dir"),
		ConfigPath: resolveString(cmd, opts.Config, "config", "config"),
		Script:     script,
	})
	if err != nil {
		return err
	}
	if result.ExitStatus != 0 {
		return shared.ExitStatusError{
			Status:  result.ExitStatus,
			Message: fmt.Sprintf("script %q exited with status %d", result.Script, result.ExitStatus),
		}
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
