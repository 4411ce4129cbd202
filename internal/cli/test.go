package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"runfile/internal/adapters"
	"runfile/internal/app"
	"runfile/internal/shared"
)

type testOptions struct {
	Dir         string
	Config      string
	NoNotifier  bool
	CacheDir    string
	ReleasesURL string
}

func newTestCommand() *cobra.Command {
	opts := testOptions{}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the project's test scripts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTest(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Project directory")
	cmd.Flags().StringVar(&opts.Config, "config", "", "Config file path (skips discovery)")
	cmd.Flags().BoolVar(&opts.NoNotifier, "no-update-notifier", false, "Skip the update check after failures")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Notifier cache directory override")
	cmd.Flags().StringVar(&opts.ReleasesURL, "releases-url", "", "Release feed base URL override")
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("config", cmd.Flags().Lookup("config"))
	_ = viper.BindPFlag("no_update_notifier", cmd.Flags().Lookup("no-update-notifier"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("releases_url", cmd.Flags().Lookup("releases-url"))
	return cmd
}

func runTest(ctx context.Context, cmd *cobra.Command, opts testOptions) error {
	service := newAppService()
	if cacheDir := resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"); cacheDir != "" {
		service.Cache = adapters.NewVersionCacheFileAdapter(cacheDir)
	}
	if releasesURL := resolveString(cmd, opts.ReleasesURL, "releases_url", "releases-url"); releasesURL != "" {
		service.Feed = adapters.NewReleaseFeedGitHubAdapter(releasesURL, adapters.ReleaseFeedOwner, adapters.ReleaseFeedRepo)
	}
	result, err := service.Test(ctx, app.TestRequest{
		Dir:             resolveString(cmd, opts.Dir, "dir", "dir"),
		ConfigPath:      resolveString(cmd, opts.Config, "config", "config"),
		DisableNotifier: resolveBool(cmd, opts.NoNotifier, "no_update_notifier", "no-update-notifier"),
	})
	if err != nil {
		return err
	}
	failed := result.Report.Failures()
	if failed > 0 {
		return shared.ExitStatusError{
			Status:  1,
			Message: fmt.Sprintf("%d of %d test file(s) failed", failed, len(result.Report.Ran)),
		}
	}
	fmt.Printf("ok: %d test file(s) passed\n", len(result.Report.Ran))
	return nil
}
