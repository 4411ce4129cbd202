package app

import (
	"time"

	"runfile/internal/adapters"
	"runfile/internal/ports"
)

type Service struct {
	Config    ports.ConfigSourcePort
	Manifest  ports.ManifestPort
	Cache     ports.VersionCachePort
	Feed      ports.ReleaseFeedPort
	Announcer ports.AnnouncerPort
	Scripts   ports.ScriptRunnerPort
	Tests     ports.TestRunnerPort
	Clock     func() time.Time
}

func NewService() Service {
	scripts := adapters.NewScriptExecAdapter()
	return Service{
		Config:    adapters.NewConfigFileAdapter(),
		Manifest:  adapters.NewManifestFileAdapter(),
		Cache:     adapters.NewVersionCacheFileAdapter(""),
		Feed:      adapters.NewReleaseFeedGitHubAdapter("", adapters.ReleaseFeedOwner, adapters.ReleaseFeedRepo),
		Announcer: adapters.NewAnnouncerConsoleAdapter(),
		Scripts:   scripts,
		Tests:     adapters.NewTestRunnerAdapter(scripts),
		Clock:     time.Now,
	}
}
