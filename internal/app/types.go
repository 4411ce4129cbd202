package app

import "runfile/internal/types"

type RunRequest struct {
	Dir        string
	ConfigPath string
	Script     string
}

type RunResult struct {
	Script     string
	Path       string
	ExitStatus int
}

type TestRequest struct {
	Dir             string
	ConfigPath      string
	DisableNotifier bool
}

type TestResult struct {
	ConfigPath string
	Report     types.TestRunReport
	Notify     NotifyResult
}

type NotifyRequest struct {
	ProjectDir string
}

type NotifyResult struct {
	// Performed is false when the freshness window suppressed the
	// cycle entirely.
	Performed   bool
	LegacyTag   string
	UpcomingTag string

	// TimesShown is the upcoming-major display counter after the cycle.
	TimesShown int
}
