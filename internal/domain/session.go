package domain

import "time"

// Session is one recorded work interval. EndUTC is nil while the session is
// still open; open sessions are excluded from all duration totals.
type Session struct {
	ID       string     `json:"id"`
	StartUTC time.Time  `json:"startUtc"`
	EndUTC   *time.Time `json:"endUtc"`
	Notes    string     `json:"notes,omitempty"`
}

// Complete reports whether the session has an end instant.
func (s Session) Complete() bool {
	return s.EndUTC != nil
}

// Span returns the session duration, or zero for open sessions and for
// end instants before the start (bad pairs are a data-quality issue, not
// grounds for negative totals).
func (s Session) Span() time.Duration {
	if s.EndUTC == nil {
		return 0
	}
	d := s.EndUTC.Sub(s.StartUTC)
	if d < 0 {
		return 0
	}
	return d
}

// SessionPatch is a partial update applied by Ledger.Update. Nil fields are
// left untouched; ClearEnd reopens the session by dropping EndUTC.
type SessionPatch struct {
	StartUTC *time.Time
	EndUTC   *time.Time
	ClearEnd bool
	Notes    *string
}

// Apply merges the patch into a session with shallow field replacement.
func (p SessionPatch) Apply(s Session) Session {
	if p.StartUTC != nil {
		s.StartUTC = p.StartUTC.UTC()
	}
	if p.ClearEnd {
		s.EndUTC = nil
	} else if p.EndUTC != nil {
		end := p.EndUTC.UTC()
		s.EndUTC = &end
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	return s
}
