// Package assets bundles the sprites and level art shipped with the game.
package assets

import "embed"

// FS holds every bundled image under static/.
//
//go:embed static/*.png
var FS embed.FS

// Paths of the bundled images inside FS.
const (
	Level           = "static/level.png"
	Player1         = "static/player1.png"
	Player2         = "static/player2.png"
	Player3         = "static/player3.png"
	Player4         = "static/player4.png"
	TransitionLeft  = "static/transition_left.png"
	TransitionRight = "static/transition_right.png"
)
