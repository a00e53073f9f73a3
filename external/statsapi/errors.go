package statsapi

import (
	"fmt"
	"net/http"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrTransient marks network failures, 429 and 5xx responses; they are retried.
	ErrTransient = crerr.New("stats api transient failure")
	// ErrDependencyUnavailable is returned while the circuit breaker is open.
	ErrDependencyUnavailable = crerr.New("stats api unavailable")
	ErrUnknownKind           = crerr.New("unknown document kind")
)

// StatusError is a non-2xx response.
type StatusError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("stats api %s: status=%d body=%s", e.Path, e.StatusCode, e.Body)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	const limit = 256
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
