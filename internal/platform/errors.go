package platform

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrUnsupported is returned on platforms without a backend.
	ErrUnsupported = fmt.Errorf("explorerpos is not supported on %s/%s; supported: windows", runtime.GOOS, runtime.GOARCH)

	// ErrQueryFailed matches any QueryError via errors.Is.
	ErrQueryFailed = errors.New("platform query failed")
)

// QueryError reports a failed OS query such as monitor enumeration or
// reading the cursor position. Err carries the OS error text.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrQueryFailed) true for every QueryError.
func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailed
}

// NewQueryError wraps err as a failure of op
func NewQueryError(op string, err error) error {
	return &QueryError{Op: op, Err: err}
}
