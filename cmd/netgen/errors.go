package main

import "errors"

// ErrInvalidArgCount is returned when a subcommand receives more than its
// allotted 15 positional arguments.
var ErrInvalidArgCount = errors.New("cmd/netgen: too many positional arguments")
