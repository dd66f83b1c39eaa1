package game

import (
	"fmt"
	"image/color"
)

// Mode is the top-level screen the game is on.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeGame
	ModeWinScreen
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "main-menu"
	case ModeGame:
		return "game"
	case ModeWinScreen:
		return "win-screen"
	default:
		return "unknown"
	}
}

// Minigame is the rule set of the current round.
type Minigame int

const (
	ColorTheMap Minigame = iota // paint the level, largest territory wins
	Dodge                       // survive the bullet volleys
)

func (mg Minigame) String() string {
	switch mg {
	case ColorTheMap:
		return "color-the-map"
	case Dodge:
		return "dodge"
	default:
		return "unknown"
	}
}

// Next returns the minigame played after mg.
func (mg Minigame) Next() Minigame {
	if mg == ColorTheMap {
		return Dodge
	}
	return ColorTheMap
}

// Action is a menu command coming from the UI layer.
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionMorePlayers
	ActionFewerPlayers
	ActionPlayAgain
)

// RoundResult records the outcome of one finished round.
type RoundResult struct {
	Round    int
	Minigame Minigame
	Winner   int // slot, or -1 for a tie or an empty canvas
	Headline string
	Early    bool // Dodge round ended before its timer
	Shares   [MaxPlayers]float64
	Points   [MaxPlayers]int // points after the round
}

// Match is the simulation core: players, level, canvas, bullets and the
// round/game state machine. It is advanced once per frame by Update and is
// independent of any window or graphics back-end.
type Match struct {
	cfg     Config
	Players [MaxPlayers]*Player
	Level   *Level
	Canvas  *Canvas
	Bullets *BulletField
	Log     *MatchLog
	Feed    *EventFeed

	mode        Mode
	minigame    Minigame
	transition  Transition
	playerCount int

	roundTimer float64
	graceTimer float64
	spawnTimer float64
	roundDone  bool
	headline   string
	standings  Standings

	round   int
	frame   int
	results []RoundResult
}

// NewMatch creates a match on the main menu. cfg must be valid.
func NewMatch(cfg Config, id string) *Match {
	m := &Match{
		cfg:         cfg,
		Players:     NewPlayers(),
		Level:       NewLevel(DefaultObstacles()),
		Canvas:      NewCanvas(ScreenWidth, ScreenHeight),
		Bullets:     NewBulletField(),
		Log:         NewMatchLog(id, cfg.VerboseLog),
		Feed:        NewEventFeed(),
		mode:        ModeMainMenu,
		minigame:    ColorTheMap,
		playerCount: cfg.PlayerCount,
		roundTimer:  cfg.FirstRoundTime,
		graceTimer:  cfg.GraceTime,
		spawnTimer:  cfg.SpawnInterval,
	}
	return m
}

// Mode returns the current screen.
func (m *Match) Mode() Mode { return m.mode }

// Minigame returns the minigame of the current round.
func (m *Match) Minigame() Minigame { return m.minigame }

// PlayerCount returns the number of participating slots.
func (m *Match) PlayerCount() int { return m.playerCount }

// Participants returns the players taking part in rounds.
func (m *Match) Participants() []*Player { return m.Players[:m.playerCount] }

// RoundTimer returns the seconds left in the current round.
func (m *Match) RoundTimer() float64 { return m.roundTimer }

// GraceTimer returns the seconds left before the next round starts.
func (m *Match) GraceTimer() float64 { return m.graceTimer }

// RoundDone reports whether the current round has ended.
func (m *Match) RoundDone() bool { return m.roundDone }

// Headline returns the round-end message, or "" while a round is running.
func (m *Match) Headline() string { return m.headline }

// Standings returns the territory split of the last ColorTheMap round.
func (m *Match) Standings() Standings { return m.standings }

// Results returns every finished round since the game started.
func (m *Match) Results() []RoundResult { return m.results }

// Round returns the 1-based number of the current round.
func (m *Match) Round() int { return m.round }

// Frame returns the number of frames simulated.
func (m *Match) Frame() int { return m.frame }

// Transition returns the wipe state for drawing.
func (m *Match) Transition() *Transition { return &m.transition }

// Config returns the settings the match was created with.
func (m *Match) Config() Config { return m.cfg }

// Apply executes a menu action and reports whether it had an effect.
func (m *Match) Apply(a Action) bool {
	switch a {
	case ActionPlay:
		if m.mode != ModeMainMenu {
			return false
		}
		return m.transition.Start()
	case ActionMorePlayers, ActionFewerPlayers:
		if m.mode != ModeMainMenu {
			return false
		}
		n := m.playerCount + 1
		if a == ActionFewerPlayers {
			n = m.playerCount - 1
		}
		n = max(2, min(MaxPlayers, n))
		if n == m.playerCount {
			return false
		}
		m.playerCount = n
		return true
	case ActionPlayAgain:
		if m.mode != ModeWinScreen || !m.transition.Start() {
			return false
		}
		m.restart()
		return true
	}
	return false
}

// restart clears points and history and sets up a fresh opening round.
func (m *Match) restart() {
	for _, p := range m.Players {
		p.Points = 0
		p.ResetForRound()
	}
	m.results = nil
	m.round = 0
	m.minigame = ColorTheMap
	m.roundTimer = m.cfg.FirstRoundTime
	m.graceTimer = m.cfg.GraceTime
	m.spawnTimer = m.cfg.SpawnInterval
	m.roundDone = false
	m.headline = ""
	m.standings = Standings{}
	m.Bullets.Clear()
	m.Canvas.Clear()
	m.logf(-1, "mode", "restart", "points cleared", 0)
}

// Update advances the match by one frame of dt seconds.
func (m *Match) Update(dt float64, in InputBackend) {
	m.frame++

	// --- Transition wipe ---
	if m.transition.Update(dt) {
		m.setMode(ModeGame)
		if m.round == 0 {
			m.beginRound()
		}
	}

	if m.mode == ModeGame {
		// --- Bullets ---
		for _, p := range m.Bullets.Update(dt, m.Participants()) {
			m.logf(p.Number, "dodge", "hit", fmt.Sprintf("%s was hit", p.Label()), 0)
		}

		// --- Players ---
		if !m.roundDone {
			m.updatePlayers(dt, in)
			m.roundTimer -= dt
		}
	}

	// --- Round end grace period ---
	// On the win screen the round is left as it ended; PlayAgain resets it.
	if m.roundDone && m.mode == ModeGame {
		m.graceTimer -= dt
		if m.graceTimer <= 0 {
			m.nextRound()
		}
	}

	if m.mode != ModeGame || m.roundDone {
		return
	}

	// --- Dodge volleys and early finish ---
	if m.minigame == Dodge {
		if m.spawnTimer <= 0 {
			m.Bullets.SpawnVolley()
			m.spawnTimer = m.cfg.SpawnInterval
			m.logf(-1, "dodge", "volley", fmt.Sprintf("%d bullets", len(bulletLanes)), float64(m.Bullets.Len()))
		}
		m.spawnTimer -= dt
		if alive := m.alive(); len(alive) <= 1 {
			m.endDodgeRound(true)
			return
		}
	}

	// --- Timer expiry ---
	if m.roundTimer <= 0 {
		switch m.minigame {
		case ColorTheMap:
			m.endColorRound()
		case Dodge:
			m.endDodgeRound(false)
		}
	}
}

// updatePlayers runs input, physics, collision and painting for every
// participant. Collisions against other players use the boxes from before
// anyone moved this frame.
func (m *Match) updatePlayers(dt float64, in InputBackend) {
	parts := m.Participants()
	snapshot := make([]Rect, len(parts))
	for i, p := range parts {
		snapshot[i] = p.Rect()
	}

	others := make([]Rect, 0, len(parts)-1)
	for i, p := range parts {
		others = others[:0]
		for j, r := range snapshot {
			if j != i {
				others = append(others, r)
			}
		}

		p.Update(ReadButtons(p.Controls, in), m.minigame, dt)
		contacts := ResolveCollisions(p, m.Level, others)
		if m.minigame != ColorTheMap {
			continue
		}
		for _, c := range contacts {
			for _, pt := range c.Points {
				m.Canvas.Paint(pt, p.Color)
			}
			m.Log.AddVerbose(m.frame, m.round, p.Label(), "paint", "splat",
				fmt.Sprintf("obstacle %d x%d", c.Obstacle, len(c.Points)), float64(len(c.Points)))
		}
	}
}

// alive returns the participants that are not dead.
func (m *Match) alive() []*Player {
	var out []*Player
	for _, p := range m.Participants() {
		if !p.Dead {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) beginRound() {
	m.round++
	m.logf(-1, "round", "start", fmt.Sprintf("%s %.0fs", m.minigame, m.roundTimer), m.roundTimer)
}

// endColorRound scores the canvas and awards the territory leader.
func (m *Match) endColorRound() {
	var colors [MaxPlayers]color.RGBA
	for i, p := range m.Players {
		colors[i] = p.Color
	}
	s := m.Canvas.Score(colors, m.playerCount, m.cfg.LegacyScoring)
	m.standings = s
	for i := 0; i < m.playerCount; i++ {
		m.Log.Add(m.frame, m.round, m.Players[i].Label(), "score", "share",
			fmt.Sprintf("%.3f", s.Shares[i]), s.Shares[i])
	}

	winner := s.Leader()
	if winner < 0 {
		m.finishRound(-1, "Nobody painted anything", false)
	} else {
		m.Players[winner].Points++
		m.logf(winner, "score", "point", fmt.Sprintf("%s has %d", m.Players[winner].Label(), m.Players[winner].Points), float64(m.Players[winner].Points))
		m.finishRound(winner, fmt.Sprintf("Player %d won", winner+1), false)
	}

	for _, p := range m.Participants() {
		if p.Points >= m.cfg.WinPoints {
			m.setMode(ModeWinScreen)
			break
		}
	}
}

// endDodgeRound awards every survivor. early marks a round ended because at
// most one participant was left standing.
func (m *Match) endDodgeRound(early bool) {
	alive := m.alive()
	for _, p := range alive {
		p.Points++
		m.logf(p.Number, "score", "point", fmt.Sprintf("%s survived, has %d", p.Label(), p.Points), float64(p.Points))
	}
	if len(alive) == 1 {
		m.finishRound(alive[0].Number, fmt.Sprintf("Player %d won", alive[0].Number+1), early)
		return
	}
	m.finishRound(-1, "It's a tie", early)
}

func (m *Match) finishRound(winner int, headline string, early bool) {
	m.roundDone = true
	m.graceTimer = m.cfg.GraceTime
	m.headline = headline

	res := RoundResult{
		Round:    m.round,
		Minigame: m.minigame,
		Winner:   winner,
		Headline: headline,
		Early:    early,
	}
	if m.minigame == ColorTheMap {
		res.Shares = m.standings.Shares
	}
	for i, p := range m.Players {
		res.Points[i] = p.Points
	}
	m.results = append(m.results, res)

	key := "timeout"
	if early {
		key = "early_end"
	}
	m.logf(winner, "round", key, headline, float64(winner))
}

// nextRound starts the following round with the other minigame.
func (m *Match) nextRound() {
	m.roundTimer = m.cfg.RoundTime
	m.graceTimer = m.cfg.GraceTime
	m.spawnTimer = m.cfg.SpawnInterval
	m.headline = ""
	m.minigame = m.minigame.Next()
	for _, p := range m.Players {
		p.ResetForRound()
	}
	m.Bullets.Clear()
	if m.minigame == ColorTheMap {
		m.Canvas.Clear()
	}
	m.roundDone = false
	m.beginRound()
}

func (m *Match) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.logf(-1, "mode", "change", fmt.Sprintf("%s → %s", m.mode, mode), float64(mode))
	m.mode = mode
}

// Winner returns the participant with the most points, lowest slot first.
func (m *Match) Winner() *Player {
	best := m.Players[0]
	for _, p := range m.Participants()[1:] {
		if p.Points > best.Points {
			best = p
		}
	}
	return best
}

// logf records an event in both the match log and the on-screen feed.
func (m *Match) logf(player int, category, key, value string, num float64) {
	label := "--"
	if player >= 0 && player < MaxPlayers {
		label = m.Players[player].Label()
	}
	m.Log.Add(m.frame, m.round, label, category, key, value, num)
	m.Feed.Add(m.frame, player, value)
}
