package domain

import (
	"errors"
	"fmt"
)

// ErrSLANotMet is returned when a structurally valid report fails at least
// one hard rule. The report has already been printed when it surfaces.
var ErrSLANotMet = errors.New("one or more SLAs not met")

// UsageError reports a wrong command line. No file has been opened.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Reason
}

// LoadError reports a results file that could not be opened or read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot read results file: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FormatError reports a results file that is not JSON or does not have
// the expected structure.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IsInputError reports whether err is a LoadError or a FormatError.
func IsInputError(err error) bool {
	var le *LoadError
	var fe *FormatError
	return errors.As(err, &le) || errors.As(err, &fe)
}
