package game

import (
	"fmt"
	"image/color"
)

const (
	feedPanelWidth = 300
	feedMaxEntries = 40
	feedLineHeight = 16
	feedTextSize   = 13
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Frame   int
	Player  int // slot, or -1 for match-wide events
	Message string
}

// EventFeed is a ring buffer of recent match events rendered on-screen.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (f *EventFeed) Add(frame, player int, msg string) {
	f.entries[f.head] = FeedEntry{
		Frame:   frame,
		Player:  player,
		Message: msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// Draw renders the feed as a panel on the right edge of the screen.
func (f *EventFeed) Draw(r Renderer) {
	panelX := float64(ScreenWidth - feedPanelWidth)
	r.DrawRect(Rect{X: panelX, Y: 0, W: feedPanelWidth, H: ScreenHeight}, color.RGBA{R: 10, G: 12, B: 10, A: 220})
	r.DrawRect(Rect{X: panelX, Y: 0, W: feedPanelWidth, H: 18}, color.RGBA{R: 20, G: 30, B: 20, A: 255})
	r.DrawText("EVENTS", Vec2{X: panelX + 8, Y: 3}, feedTextSize, color.White)

	entries := f.Recent()
	maxVisible := (ScreenHeight - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 24.0
	for _, e := range entries {
		dot := color.RGBA{R: 200, G: 200, B: 200, A: 255}
		if e.Player >= 0 && e.Player < MaxPlayers {
			dot = playerColors[e.Player]
		}
		r.DrawRect(Rect{X: panelX + 5, Y: y + 4, W: 4, H: 6}, dot)
		r.DrawText(fmt.Sprintf("%5d %s", e.Frame, e.Message), Vec2{X: panelX + 12, Y: y}, feedTextSize, color.White)
		y += feedLineHeight
	}
}
