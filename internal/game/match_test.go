package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedMatch(t *testing.T, opts ...HeadlessOption) *Headless {
	t.Helper()
	h, err := NewHeadless(opts...)
	require.NoError(t, err)
	h.Start()
	require.Equal(t, ModeGame, h.Match.Mode())
	require.Equal(t, 1, h.Match.Round())
	return h
}

// parkPlayers moves every participant into open air, well clear of the
// level geometry and of each other, with no momentum.
func parkPlayers(m *Match) {
	for i, p := range m.Participants() {
		p.Position = Vec2{X: 560 + 80*float64(i), Y: 150}
		p.Velocity = Vec2{}
		p.OnGround = false
		p.Jumping = false
	}
}

// expireRound makes the next frame the last one of the round.
func expireRound(m *Match) {
	m.roundTimer = headlessDT / 2
}

func TestMatch_NewOnMainMenu(t *testing.T) {
	m := NewMatch(DefaultConfig(), "t")
	assert.Equal(t, ModeMainMenu, m.Mode())
	assert.Equal(t, ColorTheMap, m.Minigame())
	assert.Equal(t, 2, m.PlayerCount())
	assert.Len(t, m.Participants(), 2)
	assert.Equal(t, 60.0, m.RoundTimer())
	assert.Zero(t, m.Round())

	// Nothing simulates on the menu.
	m.Update(headlessDT, NewScriptedInput())
	assert.Equal(t, 60.0, m.RoundTimer())
	assert.Equal(t, SpawnPoint(0), m.Players[0].Position)
}

func TestMatch_PlayerCountClamp(t *testing.T) {
	m := NewMatch(DefaultConfig(), "t")
	assert.True(t, m.Apply(ActionMorePlayers))
	assert.True(t, m.Apply(ActionMorePlayers))
	assert.False(t, m.Apply(ActionMorePlayers))
	assert.Equal(t, 4, m.PlayerCount())

	assert.True(t, m.Apply(ActionFewerPlayers))
	assert.True(t, m.Apply(ActionFewerPlayers))
	assert.False(t, m.Apply(ActionFewerPlayers))
	assert.Equal(t, 2, m.PlayerCount())

	assert.False(t, m.Apply(ActionPlayAgain), "play again only on the win screen")
}

func TestMatch_PlayRunsTransitionThenGame(t *testing.T) {
	h, err := NewHeadless()
	require.NoError(t, err)
	m := h.Match

	require.True(t, m.Apply(ActionPlay))
	assert.False(t, m.Apply(ActionPlay), "a running wipe is not restarted")

	h.Step(1)
	assert.Equal(t, ModeMainMenu, m.Mode(), "mode switches only when the wipe is closed")
	assert.Greater(t, m.Transition().Progress, 0.0)

	h.RunUntil(func(m *Match) bool { return m.Mode() == ModeGame }, 120)
	assert.Equal(t, ModeGame, m.Mode())
	assert.Equal(t, 1, m.Round())
	assert.True(t, m.Log.HasEntry("round", "start", "color-the-map"))

	assert.False(t, m.Apply(ActionMorePlayers), "player count is fixed during a game")

	// The wipe opens again while the round runs.
	h.RunUntil(func(m *Match) bool { return !m.Transition().Active() }, 120)
	assert.Zero(t, m.Transition().Progress)
	assert.Equal(t, ModeGame, m.Mode())
}

func TestMatch_ColorRoundSixtyForty(t *testing.T) {
	h := startedMatch(t)
	m := h.Match

	parkPlayers(m)
	m.Canvas.Clear()
	fillPixels(m.Canvas, 0, 600, m.Players[0].Color)
	fillPixels(m.Canvas, 600, 400, m.Players[1].Color)
	expireRound(m)

	h.Step(1)
	require.True(t, m.RoundDone())
	assert.Equal(t, "Player 1 won", m.Headline())
	assert.Equal(t, 1, m.Players[0].Points)
	assert.Equal(t, 0, m.Players[1].Points)
	assert.InDelta(t, 0.6, m.Standings().Shares[0], 1e-9)
	assert.InDelta(t, 0.4, m.Standings().Shares[1], 1e-9)
	assert.Equal(t, ModeGame, m.Mode())
	assert.Equal(t, m.Config().GraceTime, m.GraceTimer())

	res := m.Results()
	require.Len(t, res, 1)
	assert.Equal(t, RoundResult{
		Round:    1,
		Minigame: ColorTheMap,
		Winner:   0,
		Headline: "Player 1 won",
		Shares:   m.Standings().Shares,
		Points:   [MaxPlayers]int{1, 0, 0, 0},
	}, res[0])
	assert.True(t, m.Log.HasEntry("round", "timeout", "Player 1 won"))
	assert.Equal(t, 2, m.Log.CountCategory("score", "share"))
}

func TestMatch_ColorRoundEmptyCanvas(t *testing.T) {
	h := startedMatch(t)
	m := h.Match

	parkPlayers(m)
	m.Canvas.Clear()
	expireRound(m)

	h.Step(1)
	require.True(t, m.RoundDone())
	assert.Equal(t, "Nobody painted anything", m.Headline())
	assert.Zero(t, m.Players[0].Points)
	assert.Zero(t, m.Players[1].Points)
	assert.Equal(t, -1, m.Results()[0].Winner)
}

func TestMatch_GraceExpiryStartsNextRound(t *testing.T) {
	h := startedMatch(t, WithPlayers(3))
	m := h.Match

	parkPlayers(m)
	m.Canvas.Clear()
	fillPixels(m.Canvas, 0, 50, m.Players[2].Color)
	expireRound(m)
	h.Step(1)
	require.True(t, m.RoundDone())
	assert.Equal(t, "Player 3 won", m.Headline())

	m.Players[1].Dead = true
	frozen := m.Players[0].Position
	timer := m.RoundTimer()

	// Nothing moves while the result is shown.
	h.Step(30)
	assert.True(t, m.RoundDone())
	assert.Equal(t, frozen, m.Players[0].Position)
	assert.Equal(t, timer, m.RoundTimer())

	ok := h.RunUntil(func(m *Match) bool { return !m.RoundDone() }, 60*6)
	require.True(t, ok)

	assert.Equal(t, Dodge, m.Minigame())
	assert.Equal(t, 2, m.Round())
	assert.Empty(t, m.Headline())
	assert.Equal(t, m.Config().RoundTime, m.RoundTimer())
	assert.Zero(t, m.Bullets.Len())
	for i, p := range m.Participants() {
		assert.False(t, p.Dead, "slot %d", i)
		assert.Equal(t, Vec2{X: 100 + 100*float64(i), Y: 100}, p.Position, "slot %d", i)
	}
	assert.Equal(t, 1, m.Players[2].Points, "points persist across rounds")
}

func TestMatch_DodgeEndsEarlyWithOneSurvivor(t *testing.T) {
	h := startedMatch(t, WithPlayers(4))
	m := h.Match
	m.minigame = Dodge
	for _, p := range m.Players[:3] {
		p.Dead = true
	}
	before := m.RoundTimer()

	h.Step(1)
	require.True(t, m.RoundDone())
	assert.Greater(t, m.RoundTimer(), before-1, "round ended without waiting for the timer")
	assert.Equal(t, "Player 4 won", m.Headline())
	assert.Equal(t, [4]int{0, 0, 0, 1}, [4]int{
		m.Players[0].Points, m.Players[1].Points, m.Players[2].Points, m.Players[3].Points,
	})

	res := m.Results()
	require.Len(t, res, 1)
	assert.True(t, res[0].Early)
	assert.Equal(t, 3, res[0].Winner)
	assert.True(t, m.Log.HasEntry("round", "early_end", "Player 4 won"))
}

func TestMatch_DodgeEveryoneDeadIsTie(t *testing.T) {
	h := startedMatch(t)
	m := h.Match
	m.minigame = Dodge
	for _, p := range m.Participants() {
		p.Dead = true
	}

	h.Step(1)
	require.True(t, m.RoundDone())
	assert.Equal(t, "It's a tie", m.Headline())
	assert.True(t, m.Results()[0].Early)
	assert.Zero(t, m.Players[0].Points)
}

func TestMatch_DodgeTimeoutRewardsSurvivors(t *testing.T) {
	h := startedMatch(t, WithPlayers(3))
	m := h.Match
	m.minigame = Dodge
	parkPlayers(m)
	expireRound(m)

	h.Step(1)
	require.True(t, m.RoundDone())
	assert.Equal(t, "It's a tie", m.Headline())
	for i, p := range m.Participants() {
		assert.Equal(t, 1, p.Points, "slot %d", i)
	}
	assert.False(t, m.Results()[0].Early)
	assert.Zero(t, m.Results()[0].Shares, "dodge rounds carry no shares")
}

func TestMatch_DodgeSpawnsVolleys(t *testing.T) {
	h := startedMatch(t)
	m := h.Match
	m.minigame = Dodge
	parkPlayers(m)
	m.spawnTimer = 0

	h.Step(1)
	assert.Equal(t, len(bulletLanes), m.Bullets.Len())
	assert.Equal(t, 1, m.Log.CountCategory("dodge", "volley"))

	assert.InDelta(t, m.Config().SpawnInterval-headlessDT, m.spawnTimer, 1e-9)

	h.Step(1)
	assert.Equal(t, len(bulletLanes), m.Bullets.Len(), "no volley before the interval")

	m.spawnTimer = 0
	h.Step(1)
	assert.Equal(t, 2*len(bulletLanes), m.Bullets.Len())
}

func TestMatch_PaintOnlyInColorTheMap(t *testing.T) {
	for _, mg := range []Minigame{ColorTheMap, Dodge} {
		t.Run(mg.String(), func(t *testing.T) {
			h := startedMatch(t)
			m := h.Match
			m.minigame = mg
			m.Canvas.Clear()
			parkPlayers(m)
			m.Players[0].Position = Vec2{X: 600, Y: 568} // sinking into the ground

			h.Step(1)
			assert.True(t, m.Players[0].OnGround)
			if mg == ColorTheMap {
				assert.Positive(t, m.Canvas.Splats())
			} else {
				assert.Zero(t, m.Canvas.Splats())
			}
		})
	}
}

func TestMatch_PlayerCollisionsUseFrameStartBoxes(t *testing.T) {
	h := startedMatch(t)
	m := h.Match
	m.Canvas.Clear()
	parkPlayers(m)
	m.Players[0].Position = Vec2{X: 300, Y: 170}
	m.Players[1].Position = Vec2{X: 340, Y: 170}

	m.updatePlayers(headlessDT, NewScriptedInput())

	// Each player is pushed out of where the other started the frame, so
	// both move the full overlap.
	assert.InDelta(t, 290, m.Players[0].Position.X, 1e-9)
	assert.InDelta(t, 350, m.Players[1].Position.X, 1e-9)
}

func TestMatch_WinScreenAndPlayAgain(t *testing.T) {
	h := startedMatch(t)
	m := h.Match
	m.Players[1].Points = m.Config().WinPoints - 1

	parkPlayers(m)
	m.Canvas.Clear()
	fillPixels(m.Canvas, 0, 10, m.Players[1].Color)
	expireRound(m)
	h.Step(1)

	require.Equal(t, ModeWinScreen, m.Mode())
	assert.Same(t, m.Players[1], m.Winner())
	assert.Equal(t, 5, m.Winner().Points)

	// The win screen holds; the grace timer does not advance into a round.
	h.StepSeconds(m.Config().GraceTime + 1)
	assert.Equal(t, ModeWinScreen, m.Mode())
	assert.Equal(t, 1, m.Round())

	assert.False(t, m.Apply(ActionPlay))
	require.True(t, m.Apply(ActionPlayAgain))
	assert.Zero(t, m.Players[1].Points)
	assert.Empty(t, m.Results())
	assert.Zero(t, m.Canvas.Splats())

	ok := h.RunUntil(func(m *Match) bool { return m.Mode() == ModeGame }, 120)
	require.True(t, ok)
	assert.Equal(t, 1, m.Round())
	assert.Equal(t, ColorTheMap, m.Minigame())
	assert.False(t, m.RoundDone())
	assert.InDelta(t, m.Config().FirstRoundTime, m.RoundTimer(), 0.1)
}

func TestMatch_WinOnlyCheckedAfterColorRounds(t *testing.T) {
	h := startedMatch(t)
	m := h.Match
	m.minigame = Dodge
	for _, p := range m.Participants() {
		p.Points = m.Config().WinPoints - 1
	}
	parkPlayers(m)
	expireRound(m)

	h.Step(1)
	require.True(t, m.RoundDone())
	assert.Equal(t, m.Config().WinPoints, m.Players[0].Points)
	assert.Equal(t, ModeGame, m.Mode())
}

func TestMatch_FullRotation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FirstRoundTime = 1
	cfg.RoundTime = 1
	cfg.GraceTime = 0.25
	h := startedMatch(t, WithConfig(cfg), WithRandomInput(), WithSeed(11))
	m := h.Match

	h.RunUntil(func(m *Match) bool { return len(m.Results()) >= 4 }, 60*20)
	res := m.Results()
	require.GreaterOrEqual(t, len(res), 4)
	for i, r := range res[:4] {
		assert.Equal(t, i+1, r.Round)
		want := ColorTheMap
		if i%2 == 1 {
			want = Dodge
		}
		assert.Equal(t, want, r.Minigame, "round %d", r.Round)
	}
}

// A player resting on the floor paints the whole footprint of its box, not
// just a dot under its centre.
func TestMatch_RestingPlayerPaintsFootprint(t *testing.T) {
	h := startedMatch(t)
	m := h.Match
	m.Canvas.Clear()
	parkPlayers(m)
	p := m.Players[0]
	p.Position = Vec2{X: 600, Y: 568} // box 575..625, floor top at 590

	h.Step(120)
	require.Equal(t, 600.0, p.Position.X, "no input, no drift")

	img := m.Canvas.Image()
	minX, maxX, painted := ScreenWidth, -1, 0
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if img.RGBAAt(x, y) != p.Color {
				continue
			}
			painted++
			minX = min(minX, x)
			maxX = max(maxX, x)
		}
	}
	band := maxX - minX + 1
	assert.GreaterOrEqual(t, band, 45, "painted band spans the box width")
	assert.LessOrEqual(t, band, 65)
	assert.Greater(t, painted, 300)
}
