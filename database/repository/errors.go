package repository

import "errors"

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSlotTaken is returned by conditional booking writes when another
	// non-cancelled booking already holds the (link, date, time) slot. The
	// loser of a concurrent insert race receives this error.
	ErrSlotTaken = errors.New("slot no longer available")
)
