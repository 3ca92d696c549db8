package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no record matches a name or pattern
var ErrNotFound = errors.New("not found")

// AmbiguousError is returned when a pattern matches more than one record
type AmbiguousError struct {
	Pattern    string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple records matched %q: %s", e.Pattern, strings.Join(e.Candidates, ", "))
}
