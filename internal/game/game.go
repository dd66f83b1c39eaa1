package game

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Match to ebiten's update/draw loop.
type Game struct {
	match    *Match
	input    *ebitenInput
	renderer *ebitenRenderer
	showFeed bool // Tab toggles the event feed panel
}

// New creates a game on the main menu with a fresh match id.
func New(cfg Config, sprites *Sprites) *Game {
	return &Game{
		match:    NewMatch(cfg, uuid.NewString()),
		input:    &ebitenInput{},
		renderer: newEbitenRenderer(sprites),
	}
}

// Match exposes the simulation, mainly for the log on exit.
func (g *Game) Match() *Match { return g.match }

func (g *Game) Update() error {
	g.handleInput()

	g.input.poll()
	dt := 1.0 / float64(ebiten.TPS())
	g.match.Update(dt, g.input)

	// One canvas upload per frame, after every player has painted.
	g.renderer.UploadCanvas(g.match.Canvas)
	return nil
}

// handleInput turns menu keys and clicks into match actions. Player
// controls are read by the match itself.
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showFeed = !g.showFeed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyStandings()
	}

	mode := g.match.Mode()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if mode == ModeWinScreen {
			g.match.Apply(ActionPlayAgain)
		} else {
			g.match.Apply(ActionPlay)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.match.Apply(ActionMorePlayers)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.match.Apply(ActionFewerPlayers)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.match.Apply(ButtonAt(mode, Vec2{X: float64(x), Y: float64(y)}))
	}
}

// copyStandings puts the match summary on the system clipboard.
func (g *Game) copyStandings() {
	m := g.match
	summary := Summary(m.Log.ID(), m.Results(), m.PlayerCount())
	if err := clipboard.WriteAll(summary); err != nil {
		m.Feed.Add(m.Frame(), -1, fmt.Sprintf("clipboard: %v", err))
		return
	}
	m.Feed.Add(m.Frame(), -1, "standings copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.begin(screen)
	g.match.Draw(g.renderer)
	if g.showFeed {
		g.match.Feed.Draw(g.renderer)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
