package checkclock

import "errors"

var (
	ErrEventNotFound   = errors.New("attendance event not found")
	ErrInvalidType     = errors.New("invalid check clock type")
	ErrInvalidTime     = errors.New("invalid check clock time")
	ErrNoScheduleFound = errors.New("no shift schedule found for this date")
	ErrNoTimeWindow    = errors.New("no time window configured for this shift")
)
