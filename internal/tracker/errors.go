package tracker

import "errors"

var (
	ErrStopwatchNotFound   = errors.New("stopwatch not found")
	ErrRecordNotFound      = errors.New("record not found")
	ErrFolderNotFound      = errors.New("folder not found")
	ErrEmptyName           = errors.New("name must not be empty")
	ErrNonPositiveDuration = errors.New("duration must be greater than zero")
	ErrDurationTooLong     = errors.New("duration is too long")
	ErrInvalidHours        = errors.New("hours must be a positive number")
	ErrInvalidPeriod       = errors.New("period must be daily, weekly or monthly")
	ErrInvalidDate         = errors.New("invalid date")
)

// ErrAmbiguousID is returned when a shortened id matches more than one item.
var ErrAmbiguousID = errors.New("ambiguous id")
