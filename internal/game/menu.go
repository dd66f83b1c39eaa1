package game

import "image/color"

// Button is a clickable menu widget.
type Button struct {
	Rect   Rect
	Label  string
	Action Action
}

var (
	buttonFill   = color.RGBA{R: 201, G: 201, B: 201, A: 255}
	buttonBorder = color.RGBA{R: 131, G: 131, B: 131, A: 255}
	buttonText   = color.RGBA{R: 104, G: 104, B: 104, A: 255}
)

// MenuButtons returns the buttons shown in mode.
func MenuButtons(mode Mode) []Button {
	const cx, cy = ScreenWidth / 2, ScreenHeight / 2
	switch mode {
	case ModeMainMenu:
		return []Button{
			{Rect: Rect{cx - 50, cy - 25, 100, 50}, Label: "Play", Action: ActionPlay},
			{Rect: Rect{cx + 100, cy + 25, 100, 50}, Label: "+", Action: ActionMorePlayers},
			{Rect: Rect{cx - 200, cy + 25, 100, 50}, Label: "-", Action: ActionFewerPlayers},
		}
	case ModeWinScreen:
		return []Button{
			{Rect: Rect{cx - 50, cy - 25, 100, 50}, Label: "Play Again", Action: ActionPlayAgain},
		}
	}
	return nil
}

// ButtonAt returns the action of the button under pt, or ActionNone.
func ButtonAt(mode Mode, pt Vec2) Action {
	for _, b := range MenuButtons(mode) {
		if pt.X >= b.Rect.X && pt.X < b.Rect.X+b.Rect.W &&
			pt.Y >= b.Rect.Y && pt.Y < b.Rect.Y+b.Rect.H {
			return b.Action
		}
	}
	return ActionNone
}

func drawButton(r Renderer, b Button) {
	r.DrawRect(b.Rect, buttonBorder)
	inner := Rect{X: b.Rect.X + 2, Y: b.Rect.Y + 2, W: b.Rect.W - 4, H: b.Rect.H - 4}
	r.DrawRect(inner, buttonFill)
	const size = 10
	w := r.MeasureText(b.Label, size)
	c := b.Rect.Center()
	r.DrawText(b.Label, Vec2{X: c.X - w/2, Y: c.Y - size/2}, size, buttonText)
}
