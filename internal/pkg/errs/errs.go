// Package errs wraps cockroachdb/errors for the booking engine. Use cases
// classify failures by marking them with the sentinels in domain_errors.go
// (ErrBookingNotFound, ErrStaleState, ErrDatesConflict and friends); the
// HTTP layer maps those marks to status codes with errors.Is.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the captured stack. Nil in, nil out.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches a sentinel to err without losing the underlying cause, so
// errors.Is(err, markErr) holds while logs still show what really failed.
// A nil err collapses to the bare sentinel.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders the error with its stack trace and returns at
// most maxLines lines of it, for structured request logs.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
