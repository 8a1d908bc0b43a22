package assessment

import "errors"

var (
	// ErrInvalidTransition is returned when an operation is not valid in
	// the current state.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrBusy is returned while an oracle call is outstanding.
	ErrBusy = errors.New("session busy")

	// ErrInvalidAnswer is returned for a wrong question index or a value
	// that is not one of the question's options.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrStale is returned to the caller whose oracle result was discarded
	// because the attempt was cancelled or restarted meanwhile.
	ErrStale = errors.New("attempt superseded")
)
