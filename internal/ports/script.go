package ports

import "context"

type ScriptRunnerPort interface {
	// Run executes the script at path and returns its exit status. A
	// non-zero status is a result, not an error; errors mean the script
	// could not be started at all.
	Run(ctx context.Context, path string) (int, error)
}
