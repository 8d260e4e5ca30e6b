package model

import "time"

// DashaLevel identifies the resolution of a Vimshottari period.
type DashaLevel string

const (
	LevelMaha       DashaLevel = "maha"
	LevelAntar      DashaLevel = "antar"
	LevelPratyantar DashaLevel = "pratyantar"
)

// DashaPeriod is one node of the flattened Vimshottari timeline.
// Hierarchy is carried by ParentIDs, not by nesting: empty for maha,
// the maha id for antar, and both ancestors for pratyantar.
type DashaPeriod struct {
	ID        string     `json:"id"`
	Level     DashaLevel `json:"level"`
	Lord      string     `json:"lord"`
	Start     time.Time  `json:"start_datetime"` // UTC
	End       time.Time  `json:"end_datetime"`   // UTC
	ParentIDs []string   `json:"parent_ids"`
}

// Contains reports whether t falls inside the period's closed interval.
func (p DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// HasParent reports whether id is among the period's ancestors.
func (p DashaPeriod) HasParent(id string) bool {
	for _, pid := range p.ParentIDs {
		if pid == id {
			return true
		}
	}
	return false
}
