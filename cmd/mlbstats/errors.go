package main

import (
	"errors"
	"fmt"
	"io"
)

// usageError reports invalid flag combinations; the process exits with status 2.
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// errSyncFailed marks a run whose outcome was already printed; main exits 1 without
// repeating it.
var errSyncFailed = errors.New("sync finished with failures")

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errSyncFailed) {
		return 1
	}
	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintf(stderr, "Usage error: %s\n", usage.msg)
		return 2
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
