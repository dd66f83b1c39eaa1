package game

// Window and level size. The level, the territory canvas and the logical
// screen all share these dimensions.
const (
	ScreenWidth  = 1200
	ScreenHeight = 650
)

// Player physics.
const (
	gravity         = 980.8 // units/s², applied while airborne
	playerSpeed     = 300.0
	playerJumpForce = 700.0
	maxJumpTime     = 0.4   // seconds the jump boost can be held
	minJumpVelocity = 200.0 // release clamp for the upward speed
	playerWidth     = 50.0
	playerHeight    = 50.0
	spriteScale     = 0.65 // sprite scale when drawn over the collision box
)

// PaintRadius is the radius of a paint splat and the step of the paint grid.
const PaintRadius = 5.0

// Dodge bullets.
const (
	bulletSpeed  = 250.0
	bulletTTL    = 10.0
	bulletWidth  = 15.0
	bulletHeight = 30.0
	bulletStartX = -20.0
)

// bulletLanes are the y coordinates of one volley. The last two lanes sit
// below the visible level and never reach a player.
var bulletLanes = [...]float64{50, 200, 350, 500, 650, 800}

// Transition wipe.
const (
	transitionRate  = 2.0  // progress per second
	transitionPause = 0.15 // seconds held fully closed before opening
)

// MaxPlayers is the number of fixed player slots.
const MaxPlayers = 4
