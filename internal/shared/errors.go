package shared

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied indicates the caller's claims do not satisfy the action.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrValidation indicates input failed schema constraints.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidArgument indicates malformed arguments reached a component directly.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FieldErrors carries per-field validation messages. It matches ErrValidation
// under errors.Is so the transport layer maps it with a single switch.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ErrValidation.Error()
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports a match against ErrValidation.
func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}
