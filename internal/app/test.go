package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"runfile/internal/adapters"
)

func (s Service) Test(ctx context.Context, req TestRequest) (TestResult, error) {
	loc, cfg, err := s.loadProjectConfig(ctx, req.Dir, req.ConfigPath)
	if err != nil {
		return TestResult{}, err
	}

	patterns := cfg.Tests
	if len(patterns) == 0 {
		patterns = []string{adapters.DefaultTestPattern}
	}
	report, err := s.Tests.Run(ctx, req.Dir, patterns)
	if err != nil {
		return TestResult{}, err
	}
	if len(report.Ran) == 0 {
		log.Ctx(ctx).Warn().Strs("patterns", patterns).Msg("no test files matched")
	}

	result := TestResult{ConfigPath: loc.Path, Report: report}
	if report.Failures() == 0 || req.DisableNotifier {
		return result, nil
	}

	// The notifier never affects the command's exit status: its errors
	// are logged and dropped here.
	notify, err := s.Notify(ctx, NotifyRequest{ProjectDir: req.Dir})
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("update check failed")
		return result, nil
	}
	result.Notify = notify
	return result, nil
}
