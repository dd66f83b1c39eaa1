package game

import (
	"fmt"
	"image/color"
)

// Player is one of the fixed player slots. Players are created once and
// reused for every round of a session.
type Player struct {
	Number   int // slot 0-3, also the spawn column and sprite
	Position Vec2
	Velocity Vec2
	Rotation float64 // drawn only, never simulated
	Width    float64
	Height   float64

	Speed           float64
	JumpForce       float64
	MaxJumpTime     float64
	MinJumpVelocity float64

	OnGround bool
	Jumping  bool
	JumpTime float64 // seconds the current jump has been held

	Controls ControlScheme
	Color    color.RGBA
	Points   int  // round wins
	Dead     bool // eliminated in the current Dodge round
}

// playerColors are the painting identities of the four slots.
var playerColors = [MaxPlayers]color.RGBA{
	{R: 0xFB, G: 0xB9, B: 0x54, A: 0xFF},
	{R: 0xA8, G: 0x84, B: 0xF3, A: 0xFF},
	{R: 0x1E, G: 0xBC, B: 0x73, A: 0xFF},
	{R: 0xE8, G: 0x3B, B: 0x3B, A: 0xFF},
}

// defaultSchemes assigns the two keyboard layouts to the first two slots and
// gamepads to the rest.
var defaultSchemes = [MaxPlayers]ControlScheme{
	KeyboardA(),
	KeyboardB(),
	Controller(2),
	Controller(3),
}

// NewPlayer creates a player in slot number at its spawn point.
func NewPlayer(number int, controls ControlScheme, c color.RGBA) *Player {
	return &Player{
		Number:          number,
		Position:        SpawnPoint(number),
		Width:           playerWidth,
		Height:          playerHeight,
		Speed:           playerSpeed,
		JumpForce:       playerJumpForce,
		MaxJumpTime:     maxJumpTime,
		MinJumpVelocity: minJumpVelocity,
		Controls:        controls,
		Color:           c,
	}
}

// NewPlayers creates all four slots with their default colours and schemes.
func NewPlayers() [MaxPlayers]*Player {
	var ps [MaxPlayers]*Player
	for i := range ps {
		ps[i] = NewPlayer(i, defaultSchemes[i], playerColors[i])
	}
	return ps
}

// SpawnPoint returns the round start position of a slot.
func SpawnPoint(number int) Vec2 {
	return Vec2{X: 100 + 100*float64(number), Y: 100}
}

// Label returns the 1-based display name, e.g. "P1".
func (p *Player) Label() string {
	return fmt.Sprintf("P%d", p.Number+1)
}

// Rect returns the collision box centred on the player's position.
func (p *Player) Rect() Rect {
	return RectCentered(p.Position, p.Width, p.Height)
}

// ResetForRound puts the player back on its spawn point and clears the
// per-round state. Points are kept.
func (p *Player) ResetForRound() {
	p.Position = SpawnPoint(p.Number)
	p.Velocity = Vec2{}
	p.OnGround = false
	p.Jumping = false
	p.JumpTime = 0
	p.Dead = false
}

// Update advances the player's physics by dt seconds using this frame's
// buttons. Dead players do not move.
func (p *Player) Update(b Buttons, mg Minigame, dt float64) {
	if p.Dead {
		return
	}

	// Gravity is applied before input, so a freshly landed player still
	// feels it on the next frame.
	if !p.OnGround {
		p.Velocity.Y += gravity * dt
	}

	// --- Jump: grounded → rising → released ---
	switch {
	case b.Up && p.OnGround && !p.Jumping:
		p.Velocity.Y = -p.JumpForce
		p.Jumping = true
		p.JumpTime = 0
		p.OnGround = false
	case b.Up && p.Jumping:
		p.JumpTime += dt
		if p.JumpTime < p.MaxJumpTime {
			p.Velocity.Y = -p.JumpForce * (1 - p.JumpTime/p.MaxJumpTime)
		}
	case p.Jumping:
		p.Jumping = false
		if p.Velocity.Y < -p.MinJumpVelocity {
			p.Velocity.Y = -p.MinJumpVelocity
		}
	}

	// Horizontal input only drives velocity in ColorTheMap.
	if mg == ColorTheMap {
		axis := 0.0
		if b.Right {
			axis++
		}
		if b.Left {
			axis--
		}
		p.Velocity.X = axis * p.Speed
	}

	p.Position = p.Position.Add(p.Velocity.Scale(dt))
}
