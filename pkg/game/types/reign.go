package types

import "time"

// Decision records which side a card was swiped to.
type Decision struct {
	CardID string `json:"cardId"`
	Side   Side   `json:"side"`
}

// Reign is the summary of a finished (or abandoned) session.
type Reign struct {
	ID            string     `json:"id"`
	StartedAt     time.Time  `json:"startedAt"`
	EndedAt       time.Time  `json:"endedAt"`
	CardsResolved int        `json:"cardsResolved"`
	Meters        Meters     `json:"meters"`
	Endings       []Ending   `json:"endings"`
	Decisions     []Decision `json:"decisions,omitempty"`
}

// Ended reports whether the reign ended because a meter reached a bound.
func (r *Reign) Ended() bool {
	return len(r.Endings) > 0
}
