package session

import "errors"

var (
	// ErrEmptyDataset is returned by Start when no dataset entries are
	// available. Recoverable: retry after the data loads.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrSessionNotActive is returned when an operation requires a started
	// session.
	ErrSessionNotActive = errors.New("session is not active")

	// ErrRoundNotFinished is returned by Finish before every word of the
	// round has been typed.
	ErrRoundNotFinished = errors.New("round is not finished")
)
