package foodapi

import (
	"errors"
	"fmt"
)

// Operation names an API call for error reporting and logging.
type Operation string

const (
	OpList   Operation = "list foods"
	OpSearch Operation = "search foods"
	OpCreate Operation = "create food"
	OpUpdate Operation = "update food"
	OpDelete Operation = "delete food"
)

// FetchError reports a failed API call: a transport error, a non-2xx
// status, or a response body that could not be decoded.
type FetchError struct {
	Op         Operation
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err wraps a *FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}
