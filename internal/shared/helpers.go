// Package shared provides common utility types used across multiple
// packages in the runfile codebase.
package shared

import (
	"fmt"
)

// HTTPStatusErrorWithBody creates a formatted error that includes the
// response body for non-2xx HTTP responses.
func HTTPStatusErrorWithBody(status int, url string, body string) error {
	return fmt.Errorf("status=%d url=%s response=%s", status, url, body)
}

// ExitStatusError carries an exit status that the process must forward
// verbatim, such as a child script's status. It bypasses the usual
// error-code-to-exit-code mapping.
type ExitStatusError struct {
	Status  int
	Message string
}

func (e ExitStatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit status %d", e.Status)
}
