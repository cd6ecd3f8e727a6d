package core

// Error is a string-constant error type, cheap enough for firmware builds.
type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoPins      = Error("routine declares no pins")
	ErrPinShortage = Error("routine declares more pins than the target provides")
)
