package core

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrNoAdapter     = errors.New("unable to detect adapter type")
	ErrMixedFormats  = errors.New("payloads use different formats")
	ErrNoCatalog     = errors.New("no catalog files found")
	ErrNotLoaded     = errors.New("catalog not loaded")
)

// FormatError reports a payload that does not match the structure an
// adapter expects.
type FormatError struct {
	Format   string
	Expected string
	Issues   []string
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("invalid format for %s: expected %s", e.Format, e.Expected)
	if len(e.Issues) > 0 {
		msg += " (" + strings.Join(e.Issues, "; ") + ")"
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
