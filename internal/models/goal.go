package models

// Period is the recurrence window of a goal.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Goal is a recurring hours target. An empty Category matches every record.
// Progress is never stored; it is derived from the archive on demand.
type Goal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
	Period   Period  `json:"period"`
}
