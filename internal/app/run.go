package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

func (s Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	script := strings.TrimSpace(req.Script)
	if script == "" {
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("script name is required")
	}

	loc, cfg, err := s.loadProjectConfig(ctx, req.Dir, req.ConfigPath)
	if err != nil {
		return RunResult{}, err
	}
	path, ok := cfg.Scripts[script]
	if !ok {
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("script %q is not defined in %s", script, loc.Path))
	}
	dir := req.Dir
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	log.Ctx(ctx).Debug().Str("script", script).Str("path", path).Msg("running script")
	status, err := s.Scripts.Run(ctx, path)
	if err != nil {
		return RunResult{}, err
	}
	return RunResult{Script: script, Path: path, ExitStatus: status}, nil
}
