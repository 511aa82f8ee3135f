package catalogue

import "errors"

// Sentinel errors for build-phase precondition violations.
var (
	// ErrFrozen is returned by Builder mutators once Build has been called.
	ErrFrozen = errors.New("catalogue is frozen and cannot be modified")

	// ErrEmptyName is returned when a stop or bus has an empty name.
	ErrEmptyName = errors.New("empty name")

	// ErrNoStops is returned when a bus is added with an empty stop list.
	ErrNoStops = errors.New("bus has no stops")

	// ErrUnknownStop is returned when a bus references a stop that was never added.
	ErrUnknownStop = errors.New("unknown stop")

	// ErrStopInUse is returned when a stop served by a bus is moved.
	ErrStopInUse = errors.New("stop is served by a bus")
)
