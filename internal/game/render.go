package game

import (
	"fmt"
	"image/color"
	"sort"
)

// SpriteID names a loaded texture.
type SpriteID int

const (
	SpriteLevel SpriteID = iota
	SpritePlayer1
	SpritePlayer2
	SpritePlayer3
	SpritePlayer4
	SpriteWipeLeft
	SpriteWipeRight
	spriteCount
)

// Renderer is the drawing back-end the match draws through. Positions are
// top-left corners in level units.
type Renderer interface {
	DrawSprite(id SpriteID, pos Vec2, rotation, scale float64, tint color.Color)
	DrawRect(r Rect, c color.Color)
	DrawText(s string, pos Vec2, size float64, c color.Color)
	MeasureText(s string, size float64) float64
	// UploadCanvas copies the canvas pixels to the texture drawn by
	// DrawCanvas. It is called once per frame after every player moved.
	UploadCanvas(c *Canvas)
	DrawCanvas()
}

var (
	backgroundColor = color.RGBA{R: 0xC7, G: 0xDC, B: 0xD0, A: 0xFF}
	deadTint        = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	textColor       = color.Black
)

// Draw renders the current mode.
func (m *Match) Draw(r Renderer) {
	r.DrawRect(Rect{W: ScreenWidth, H: ScreenHeight}, backgroundColor)

	switch m.mode {
	case ModeGame:
		m.drawRound(r)
	case ModeMainMenu:
		m.drawMainMenu(r)
	case ModeWinScreen:
		m.drawWinScreen(r)
	}
}

func (m *Match) drawRound(r Renderer) {
	r.DrawSprite(SpriteLevel, Vec2{}, 0, 1, color.White)
	if m.minigame == ColorTheMap {
		r.DrawCanvas()
	}
	for _, p := range m.Participants() {
		var tint color.Color = color.White
		if p.Dead {
			tint = deadTint
		}
		box := p.Rect()
		r.DrawSprite(SpritePlayer1+SpriteID(p.Number), Vec2{X: box.X, Y: box.Y}, p.Rotation, spriteScale, tint)
	}
	m.Bullets.Each(func(b BulletData) {
		r.DrawRect(b.Rect, bulletColor)
	})

	m.drawTransition(r)
	m.drawPoints(r)

	secs := max(0, int(m.roundTimer))
	r.DrawText(fmt.Sprint(secs), Vec2{X: ScreenWidth / 2, Y: 20}, 35, textColor)

	if m.headline == "" {
		return
	}
	w := r.MeasureText(m.headline, 35)
	r.DrawText(m.headline, Vec2{X: ScreenWidth/2 - w/2, Y: ScreenHeight/2 - 35}, 35, textColor)
	if m.minigame == ColorTheMap {
		m.drawShares(r)
	}
}

// drawShares lists the territory shares from highest to lowest in each
// player's colour. Players with no territory are left out.
func (m *Match) drawShares(r Renderer) {
	order := make([]int, 0, MaxPlayers)
	for i := 0; i < m.playerCount; i++ {
		if m.standings.Shares[i] > 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return m.standings.Shares[order[a]] > m.standings.Shares[order[b]]
	})
	for rank, i := range order {
		line := fmt.Sprintf("%d: %.1f%%", rank+1, m.standings.Shares[i]*100)
		w := r.MeasureText(line, 20)
		pos := Vec2{X: ScreenWidth/2 - w/2, Y: ScreenHeight/2 + 50 + float64(rank)*20}
		r.DrawText(line, pos, 20, m.Players[i].Color)
	}
}

// drawPoints shows every participant's points along the top edge.
func (m *Match) drawPoints(r Renderer) {
	x := 24.0
	for _, p := range m.Participants() {
		label := fmt.Sprintf("%s %d", p.Label(), p.Points)
		r.DrawRect(Rect{X: x - 2, Y: 2, W: r.MeasureText(label, 20) + 4, H: 24}, color.RGBA{A: 90})
		r.DrawText(label, Vec2{X: x, Y: 4}, 20, p.Color)
		x += r.MeasureText(label, 20) + 24
	}
}

func (m *Match) drawTransition(r Renderer) {
	if m.transition.Progress <= 0 {
		return
	}
	const half = ScreenWidth / 2.0
	off := m.transition.PanelOffset() * half
	r.DrawSprite(SpriteWipeLeft, Vec2{X: -half + off}, 0, 1, color.White)
	r.DrawSprite(SpriteWipeRight, Vec2{X: ScreenWidth - off}, 0, 1, color.White)
}

func (m *Match) drawMainMenu(r Renderer) {
	title := "Color The Map"
	w := r.MeasureText(title, 40)
	r.DrawText(title, Vec2{X: ScreenWidth/2 - w/2, Y: ScreenHeight/2 - 140}, 40, textColor)

	for _, b := range MenuButtons(ModeMainMenu) {
		drawButton(r, b)
	}
	r.DrawText(fmt.Sprintf("Players: %d", m.playerCount),
		Vec2{X: ScreenWidth/2 - 50, Y: ScreenHeight/2 + 50}, 20, textColor)
	m.drawTransition(r)
}

func (m *Match) drawWinScreen(r Renderer) {
	win := m.Winner()
	line := fmt.Sprintf("Player %d wins with %d points", win.Number+1, win.Points)
	w := r.MeasureText(line, 30)
	r.DrawText(line, Vec2{X: ScreenWidth/2 - w/2, Y: ScreenHeight/2 - 80}, 30, win.Color)

	for _, b := range MenuButtons(ModeWinScreen) {
		drawButton(r, b)
	}
	m.drawTransition(r)
}
