package models

import "time"

// Stopwatch is a timer in progress. Elapsed holds the time accumulated by all
// previous running segments; the current segment starts at StartTime.
type Stopwatch struct {
	ID        string        `json:"id"`
	StartTime time.Time     `json:"start_time"`
	Elapsed   time.Duration `json:"elapsed"`
	Running   bool          `json:"running"`
}

// ElapsedAt returns the total elapsed time as observed at now.
// A clock reading earlier than StartTime contributes nothing.
func (s Stopwatch) ElapsedAt(now time.Time) time.Duration {
	if !s.Running {
		return s.Elapsed
	}
	segment := now.Sub(s.StartTime)
	if segment < 0 {
		segment = 0
	}
	return s.Elapsed + segment
}
