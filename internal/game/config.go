package game

import "fmt"

// Config holds the match settings that can change between sessions.
// Physics tuning is fixed in tuning.go.
type Config struct {
	PlayerCount    int     // participating slots, 2-4
	FirstRoundTime float64 // seconds of the opening round
	RoundTime      float64 // seconds of every later round
	GraceTime      float64 // round-end display before the next round
	SpawnInterval  float64 // seconds between Dodge volleys
	WinPoints      int     // points that end the game

	// LegacyScoring keeps the branch anomaly of the territory classifier.
	// See Canvas.Score.
	LegacyScoring bool
	// VerboseLog records per-splat paint entries in the MatchLog.
	VerboseLog bool
}

// DefaultConfig returns the shipped settings.
func DefaultConfig() Config {
	return Config{
		PlayerCount:    2,
		FirstRoundTime: 60,
		RoundTime:      15,
		GraceTime:      5,
		SpawnInterval:  5,
		WinPoints:      5,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.PlayerCount < 2 || c.PlayerCount > MaxPlayers:
		return fmt.Errorf("player count %d out of range [2,%d]", c.PlayerCount, MaxPlayers)
	case c.FirstRoundTime <= 0:
		return fmt.Errorf("first round time must be positive, got %g", c.FirstRoundTime)
	case c.RoundTime <= 0:
		return fmt.Errorf("round time must be positive, got %g", c.RoundTime)
	case c.GraceTime <= 0:
		return fmt.Errorf("grace time must be positive, got %g", c.GraceTime)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("spawn interval must be positive, got %g", c.SpawnInterval)
	case c.WinPoints < 1:
		return fmt.Errorf("win points must be at least 1, got %d", c.WinPoints)
	}
	return nil
}
