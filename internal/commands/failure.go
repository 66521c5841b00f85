package commands

import (
	"fmt"
	"io"

	"taskboard/internal/backend/todoapi"
	"taskboard/internal/exitcode"
)

// failure prints a backend error and picks the exit code. A 401 means the
// stored session is gone or expired; everything else is a backend problem.
func failure(errOut io.Writer, err error) int {
	if todoapi.IsUnauthorized(err) {
		fmt.Fprintln(errOut, "error: session expired (run: taskboard login)")
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.BackendError
}
