package barneshut

import "errors"

// ErrEmptyInput is returned by Build when no sources are supplied.
var ErrEmptyInput = errors.New("barneshut: empty input")

// ErrBodyOutsideBounds is returned by Build when a source lies outside
// the supplied bounding cube. It signals a caller bug: Build never
// silently widens the cube.
var ErrBodyOutsideBounds = errors.New("barneshut: body outside bounding cube")

// ErrInvalidConfig is returned when a Config fails validation: Theta
// < 0, MaxBodiesPerLeaf == 0, or MaxTreeDepth == 0.
var ErrInvalidConfig = errors.New("barneshut: invalid config")
