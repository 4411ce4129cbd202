package adapters

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"runfile/internal/ports"
)

// ScriptExecAdapter runs project scripts as child processes with
// inherited stdio, so their output streams to the user directly.
type ScriptExecAdapter struct{}

func NewScriptExecAdapter() ScriptExecAdapter {
	return ScriptExecAdapter{}
}

// Run executes the script at path and returns its exit status. The
// status is a result, not an error: callers forward it to the process
// exit. Errors mean the script could not be started.
func (a ScriptExecAdapter) Run(ctx context.Context, path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("script not found: %s", path)).
			WithCause(err)
	}
	if info.IsDir() {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("script path is a directory: %s", path))
	}

	name := path
	// A bare filename must not fall through to a PATH lookup.
	if !strings.ContainsAny(name, `/\`) {
		name = "./" + name
	}
	cmd := exec.CommandContext(ctx, name)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to execute script: %s", path)).
			WithCause(err)
	}
	return 0, nil
}

var _ ports.ScriptRunnerPort = ScriptExecAdapter{}
