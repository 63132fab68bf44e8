package domain

import "time"

// Period is an absolute report window [From, To) covering Days calendar days.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	Days int       `json:"days"`
}

// DateFrom returns the first day of the window formatted as YYYY-MM-DD.
func (p Period) DateFrom() string {
	return p.From.Format(time.DateOnly)
}

// DateTo returns the day the window ends, formatted as YYYY-MM-DD.
func (p Period) DateTo() string {
	return p.To.Format(time.DateOnly)
}
