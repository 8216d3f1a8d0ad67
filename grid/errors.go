package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the sentinel wrapped by every validation failure
// New can produce, mirroring params.ErrInvalidParameter's errors.Is
// contract.
var ErrInvalidParameter = errors.New("grid: invalid parameter")

func paramErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidParameter)
}
