package wander

import "errors"

// Fatal step errors. Run stops on the first one; none of them is retried.
var (
	ErrInvalidDistanceBounds = errors.New("min-distance is greater than max-distance")
	ErrInvalidDelayBounds    = errors.New("min-delay is greater than max-delay")
	ErrMoveFailed            = errors.New("failed to move the pointer")
	ErrDistanceOutOfRange    = errors.New("distance bounds exceed the largest pointer offset")
	ErrDelayOutOfRange       = errors.New("delay bounds exceed the longest pause")
)
