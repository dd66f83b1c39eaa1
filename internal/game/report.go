package game

import (
	"fmt"
	"sort"
	"strings"
)

// Tally aggregates the results of one match.
type Tally struct {
	Rounds     int
	Ties       int
	EarlyEnds  int
	Wins       [MaxPlayers]int // rounds won outright
	Points     [MaxPlayers]int // points after the last round
	AvgShare   [MaxPlayers]float64
	ColorGames int
}

// TallyResults folds a round history into a Tally.
func TallyResults(results []RoundResult) Tally {
	var t Tally
	for _, r := range results {
		t.Rounds++
		if r.Winner < 0 {
			t.Ties++
		} else {
			t.Wins[r.Winner]++
		}
		if r.Early {
			t.EarlyEnds++
		}
		if r.Minigame == ColorTheMap {
			t.ColorGames++
			for i, s := range r.Shares {
				t.AvgShare[i] += s
			}
		}
		t.Points = r.Points
	}
	if t.ColorGames > 0 {
		for i := range t.AvgShare {
			t.AvgShare[i] /= float64(t.ColorGames)
		}
	}
	return t
}

// Summary returns a human-readable standings report for count players. It
// is what the clipboard export and the headless report print.
func Summary(matchID string, results []RoundResult, count int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Match %s (%d rounds) ===\n", matchID, len(results))

	sb.WriteString("\n--- Rounds ---\n")
	for _, r := range results {
		early := ""
		if r.Early {
			early = " (early)"
		}
		fmt.Fprintf(&sb, "  #%-3d %-14s %s%s\n", r.Round, r.Minigame, r.Headline, early)
		if r.Minigame != ColorTheMap {
			continue
		}
		for _, i := range rankByShare(r.Shares, count) {
			fmt.Fprintf(&sb, "         P%d %5.1f%%\n", i+1, r.Shares[i]*100)
		}
	}

	t := TallyResults(results)
	sb.WriteString("\n--- Standings ---\n")
	for i := 0; i < count && i < MaxPlayers; i++ {
		fmt.Fprintf(&sb, "  P%d  points=%d  wins=%d  avg territory=%5.1f%%\n",
			i+1, t.Points[i], t.Wins[i], t.AvgShare[i]*100)
	}
	fmt.Fprintf(&sb, "  ties=%d  early dodge finishes=%d\n", t.Ties, t.EarlyEnds)
	return sb.String()
}

// rankByShare returns the first count slots ordered by descending share,
// lowest slot first on equal shares.
func rankByShare(shares [MaxPlayers]float64, count int) []int {
	count = min(count, MaxPlayers)
	idx := make([]int, count)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return shares[idx[a]] > shares[idx[b]]
	})
	return idx
}
