package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventFeed_RingBuffer(t *testing.T) {
	f := NewEventFeed()
	assert.Empty(t, f.Recent())

	for i := 0; i < feedMaxEntries+5; i++ {
		f.Add(i, i%MaxPlayers, fmt.Sprintf("event %d", i))
	}
	got := f.Recent()
	assert.Len(t, got, feedMaxEntries)
	assert.Equal(t, "event 5", got[0].Message, "oldest entries are dropped")
	assert.Equal(t, fmt.Sprintf("event %d", feedMaxEntries+4), got[len(got)-1].Message)
}

func TestEventFeed_MatchEventsAppear(t *testing.T) {
	h := startedMatch(t)
	var msgs []string
	for _, e := range h.Match.Feed.Recent() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "color-the-map 60s")
}
