package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"runfile/internal/types"
)

type ConfigChecker struct{}

func NewConfigChecker() ConfigChecker {
	return ConfigChecker{}
}

// Validate rejects configs that would fail later in confusing ways:
// blank script names or paths and blank test patterns.
func (c ConfigChecker) Validate(ctx context.Context, loc types.ConfigLocation, cfg types.ProjectConfig) error {
	assert.NotEmpty(ctx, loc.Path, "config location must be set")

	for name, path := range cfg.Scripts {
		if strings.TrimSpace(name) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s: script with empty name", loc.Path))
		}
		if strings.TrimSpace(path) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s: script %q has an empty path", loc.Path, name))
		}
	}
	for _, pattern := range cfg.Tests {
		if strings.TrimSpace(pattern) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s: empty test pattern", loc.Path))
		}
	}
	log.Ctx(ctx).Debug().Str("config", loc.Path).Msg("config validated")
	return nil
}
