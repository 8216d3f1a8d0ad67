package params

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the sentinel wrapped by every validation failure
// New can produce. Callers branch with errors.Is(err, ErrInvalidParameter);
// the wrapped message carries the offending field and value.
var ErrInvalidParameter = errors.New("params: invalid parameter")

// paramErrorf wraps ErrInvalidParameter with field-specific context,
// mirroring the teacher's builderErrorf/%w convention: the sentinel stays
// matchable via errors.Is while the message stays human-readable.
func paramErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidParameter)
}
