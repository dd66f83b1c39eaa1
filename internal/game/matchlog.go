package game

import (
	"fmt"
	"strings"
)

// MatchLogEntry is one recorded event of a match.
type MatchLogEntry struct {
	Frame    int
	Round    int
	Player   string  // label e.g. "P1", or "--" for match-wide events
	Category string  // round, score, dodge, mode, paint
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for assertions
}

// String formats the entry as a fixed-width log line.
//
//	[F=00421 R=1] P2   score   share          0.613
func (e MatchLogEntry) String() string {
	return fmt.Sprintf("[F=%05d R=%d] %-4s %-7s %-14s %s",
		e.Frame, e.Round, e.Player, e.Category, e.Key, e.Value)
}

// MatchLog collects structured events of a match. It is unbounded and
// meant to be read by tests and the headless report; the on-screen feed is
// EventFeed.
type MatchLog struct {
	id      string
	entries []MatchLogEntry
	verbose bool
}

// NewMatchLog creates a log for match id. If verbose is true, per-splat
// paint entries are recorded too.
func NewMatchLog(id string, verbose bool) *MatchLog {
	return &MatchLog{id: id, verbose: verbose}
}

// ID returns the match id.
func (ml *MatchLog) ID() string { return ml.id }

// Add records a new entry.
func (ml *MatchLog) Add(frame, round int, player, category, key, value string, numVal float64) {
	ml.entries = append(ml.entries, MatchLogEntry{
		Frame:    frame,
		Round:    round,
		Player:   player,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (ml *MatchLog) AddVerbose(frame, round int, player, category, key, value string, numVal float64) {
	if !ml.verbose {
		return
	}
	ml.Add(frame, round, player, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (ml *MatchLog) Entries() []MatchLogEntry {
	return ml.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (ml *MatchLog) Filter(category, key string) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterPlayer returns entries for a specific player label.
func (ml *MatchLog) FilterPlayer(label string) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.entries {
		if e.Player == label {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (ml *MatchLog) CountCategory(category, key string) int {
	return len(ml.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (ml *MatchLog) LastOf(category, key string) (MatchLogEntry, bool) {
	entries := ml.Filter(category, key)
	if len(entries) == 0 {
		return MatchLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (ml *MatchLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range ml.entries {
		if e.Category == category && e.Key == key && strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Dump renders the whole log, one entry per line, under a match header.
func (ml *MatchLog) Dump() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "match %s (%d entries)\n", ml.id, len(ml.entries))
	for _, e := range ml.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
