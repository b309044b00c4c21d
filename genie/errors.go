package genie

import "errors"

var (
	// ErrInvalidField is returned when an address, value or compare does not
	// fit the field range of the console.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidCode is returned when a Game Genie code has the wrong length,
	// contains a character outside of the console alphabet or fails the
	// structural checks of the console code format.
	ErrInvalidCode = errors.New("invalid game genie code")

	// ErrUnknownSystem is returned for system names or values that do not
	// identify a supported console.
	ErrUnknownSystem = errors.New("unknown system")
)
