package models

import (
	"strings"
	"time"
)

// HistoryEntry is the persisted record of one completed brief. Entries are
// immutable once created.
type HistoryEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Company    string    `json:"company"`
	Objective  string    `json:"objective"`
	Attendees  string    `json:"attendees,omitempty"`
	FocusAreas string    `json:"focusAreas,omitempty"`
	Documents  []string  `json:"documents,omitempty"`
	Result     string    `json:"result"`
}

// Title renders the one-line label used when listing saved briefs.
func (e HistoryEntry) Title() string {
	company := e.Company
	if company == "" {
		company = "Unknown"
	}
	objective := e.Objective
	if objective == "" {
		objective = "No objective"
	}
	ts := "no timestamp"
	if !e.Timestamp.IsZero() {
		ts = strings.Replace(e.Timestamp.Format(time.RFC3339), "T", " ", 1)
	}
	return company + " - " + objective + " (" + ts + ")"
}
