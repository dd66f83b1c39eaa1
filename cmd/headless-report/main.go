package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Garsondee/color-the-map/internal/game"
	"github.com/google/uuid"
)

type runStats struct {
	runIndex int
	seed     int64
	matchID  string
	frames   int

	rounds      int
	colorRounds int
	dodgeRounds int
	ties        int
	earlyEnds   int
	hits        int
	volleys     int
	wonGame     bool

	points    [game.MaxPlayers]int
	wins      [game.MaxPlayers]int
	hitsBy    [game.MaxPlayers]int
	lastRound string
	summary   string
}

func main() {
	var runs int
	var frames int
	var players int
	var seedBase int64
	var seedStep int64
	var legacy bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&frames, "frames", 60*240, "frames per match (60 per second)")
	flag.IntVar(&players, "players", 4, "participating players (2-4)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&legacy, "legacy-scoring", false, "credit unclaimed pixels to player 3 when 3+ players play")
	flag.BoolVar(&verbose, "verbose", false, "print every round summary")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}

	cfg := game.DefaultConfig()
	cfg.PlayerCount = players
	cfg.LegacyScoring = legacy
	if err := cfg.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("players=%d runs=%d frames=%d seed_base=%d seed_step=%d legacy_scoring=%t\n\n",
		players, runs, frames, seedBase, seedStep, legacy)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, err := runMatch(i+1, seed, frames, cfg)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, rs)
		printRun(rs, players)
		if verbose {
			fmt.Println(rs.summary)
		}
	}
	printAggregate(all, players)
}

// runMatch plays one match with random input until frames elapse or the
// win screen is reached.
func runMatch(runIndex int, seed int64, frames int, cfg game.Config) (runStats, error) {
	id := uuid.NewString()
	h, err := game.NewHeadless(
		game.WithConfig(cfg),
		game.WithSeed(seed),
		game.WithRandomInput(),
		game.WithMatchID(id),
	)
	if err != nil {
		return runStats{}, err
	}
	h.Start()
	h.RunUntil(func(m *game.Match) bool {
		return m.Mode() == game.ModeWinScreen || m.Frame() >= frames
	}, frames)

	m := h.Match
	rs := runStats{
		runIndex: runIndex,
		seed:     seed,
		matchID:  id,
		frames:   m.Frame(),
		hits:     m.Log.CountCategory("dodge", "hit"),
		volleys:  m.Log.CountCategory("dodge", "volley"),
		wonGame:  m.Mode() == game.ModeWinScreen,
		summary:  game.Summary(id, m.Results(), m.PlayerCount()),
	}
	for _, r := range m.Results() {
		rs.rounds++
		if r.Minigame == game.ColorTheMap {
			rs.colorRounds++
		} else {
			rs.dodgeRounds++
		}
		if r.Winner < 0 {
			rs.ties++
		} else {
			rs.wins[r.Winner]++
		}
		if r.Early {
			rs.earlyEnds++
		}
	}
	for i, p := range m.Players {
		rs.points[i] = p.Points
		for _, e := range m.Log.FilterPlayer(p.Label()) {
			if e.Category == "dodge" && e.Key == "hit" {
				rs.hitsBy[i]++
			}
		}
	}
	if e, ok := m.Log.LastOf("round", "start"); ok {
		rs.lastRound = fmt.Sprintf("frame %d %s", e.Frame, e.Value)
	}
	return rs, nil
}

func printRun(rs runStats, players int) {
	fmt.Printf("--- Run %d (seed=%d match=%s) ---\n", rs.runIndex, rs.seed, rs.matchID)
	fmt.Printf("frames=%d rounds=%d color=%d dodge=%d ties=%d early_dodge=%d won_game=%t\n",
		rs.frames, rs.rounds, rs.colorRounds, rs.dodgeRounds, rs.ties, rs.earlyEnds, rs.wonGame)
	fmt.Printf("dodge: volleys=%d hits=%d (%s)\n", rs.volleys, rs.hits, formatSlots(rs.hitsBy, players))
	if rs.lastRound != "" {
		fmt.Printf("last_round_start: %s\n", rs.lastRound)
	}
	fmt.Printf("points: %s\n", formatSlots(rs.points, players))
	fmt.Printf("round_wins: %s\n\n", formatSlots(rs.wins, players))
}

func printAggregate(all []runStats, players int) {
	var points, wins [game.MaxPlayers]int
	rounds, ties, finished := 0, 0, 0
	for _, rs := range all {
		for i := range points {
			points[i] += rs.points[i]
			wins[i] += rs.wins[i]
		}
		rounds += rs.rounds
		ties += rs.ties
		if rs.wonGame {
			finished++
		}
	}
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d finished=%d avg_rounds=%.1f tie_rate=%.0f%%\n",
		len(all), finished, avg(rounds, len(all)), pct(ties, rounds))
	fmt.Printf("total_points: %s\n", formatSlots(points, players))
	fmt.Printf("total_round_wins: %s\n", formatSlots(wins, players))
}

func formatSlots(v [game.MaxPlayers]int, players int) string {
	parts := make([]string, 0, players)
	for i := 0; i < players && i < len(v); i++ {
		parts = append(parts, fmt.Sprintf("P%d=%d", i+1, v[i]))
	}
	return strings.Join(parts, " ")
}

func avg(sum int, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
