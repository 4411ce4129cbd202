package ports

import (
	"context"

	"runfile/internal/types"
)

type TestRunnerPort interface {
	Run(ctx context.Context, dir string, patterns []string) (types.TestRunReport, error)
}
