package fetch

import (
	"errors"
	"fmt"
)

// Error reports an unreachable endpoint or a non-2xx response.
type Error struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsError reports whether err wraps a fetch Error.
func IsError(err error) bool {
	var fe *Error
	return errors.As(err, &fe)
}
