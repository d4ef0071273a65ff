package core

import "errors"

// ErrDegenerateGeometry marks scene or camera inputs the math cannot handle,
// such as zero-sized images, zero-length directions or non-positive radii.
var ErrDegenerateGeometry = errors.New("degenerate geometry")
