package adapters

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"runfile/internal/ports"
	"runfile/internal/types"
)

// DefaultTestPattern matches the conventional test script location when
// the project config lists none.
const DefaultTestPattern = "tests/*.sh"

// TestRunnerAdapter globs the configured test patterns and executes
// every match through the script runner, in sorted order.
type TestRunnerAdapter struct {
	Scripts ports.ScriptRunnerPort
}

func NewTestRunnerAdapter(scripts ports.ScriptRunnerPort) TestRunnerAdapter {
	return TestRunnerAdapter{Scripts: scripts}
}

func (a TestRunnerAdapter) Run(ctx context.Context, dir string, patterns []string) (types.TestRunReport, error) {
	if dir == "" {
		dir = "."
	}
	if len(patterns) == 0 {
		patterns = []string{DefaultTestPattern}
	}
	seen := map[string]bool{}
	files := []string{}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return types.TestRunReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid test pattern: %s", pattern)).
				WithCause(err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}
	sort.Strings(files)

	report := types.TestRunReport{}
	for _, file := range files {
		status, err := a.Scripts.Run(ctx, file)
		if err != nil {
			return report, err
		}
		report.Ran = append(report.Ran, file)
		if status != 0 {
			report.Failed = append(report.Failed, file)
		}
	}
	return report, nil
}

var _ ports.TestRunnerPort = TestRunnerAdapter{}
