package linked

import "errors"

// ErrEmpty indicates a pop from a structure with no elements.
var ErrEmpty = errors.New("empty structure")
