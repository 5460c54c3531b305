package bemto

import "errors"

// ErrInvalidArgument is returned when a block is created from a value that is
// not a shorthand string.
var ErrInvalidArgument = errors.New("bemto: invalid argument")
