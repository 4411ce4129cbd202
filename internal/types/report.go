package types

// TestRunReport lists the test files executed in one `test` run, in
// execution order.
type TestRunReport struct {
	Ran    []string
	Failed []string
}

func (r TestRunReport) Failures() int {
	return len(r.Failed)
}
