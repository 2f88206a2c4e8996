package db

import "time"

// InternalRuleRow is the raw internal-rule record as stored: the params
// document stays encoded until the row is mapped into the typed rule model.
type InternalRuleRow struct {
	ID        string
	RefereeID string
	Kind      string
	Enabled   bool
	Params    []byte
	UpdatedBy string
	UpdatedAt time.Time
	Reason    string
	Position  int
}

// CalendarEntry is one generated matchday with its placeholder fixtures,
// produced by the calendar service and written in a single transaction.
type CalendarEntry struct {
	MatchdayID string
	LeagueID   string
	GroupID    string
	Number     int
	Date       time.Time
}
