package game

import (
	"fmt"
	"math/rand"
)

// headlessDT is the fixed frame time of headless runs (60 frames/s).
const headlessDT = 1.0 / 60

// ScriptedInput is an InputBackend whose held keys and pad buttons are set
// directly. Tests and the headless report drive matches with it.
type ScriptedInput struct {
	keys [keyCount]bool
	pads map[int]*[padButtonCount]bool
}

// NewScriptedInput returns an input with nothing held.
func NewScriptedInput() *ScriptedInput {
	return &ScriptedInput{pads: map[int]*[padButtonCount]bool{}}
}

// Hold sets the held state of keyboard keys.
func (si *ScriptedInput) Hold(held bool, keys ...Key) {
	for _, k := range keys {
		si.keys[k] = held
	}
}

// HoldPad sets the held state of buttons on one gamepad device.
func (si *ScriptedInput) HoldPad(device int, held bool, buttons ...PadButton) {
	p, ok := si.pads[device]
	if !ok {
		p = &[padButtonCount]bool{}
		si.pads[device] = p
	}
	for _, b := range buttons {
		p[b] = held
	}
}

// Release clears every held key and button.
func (si *ScriptedInput) Release() {
	si.keys = [keyCount]bool{}
	clear(si.pads)
}

// HoldButtons holds exactly the buttons in b for the given control scheme.
func (si *ScriptedInput) HoldButtons(cs ControlScheme, b Buttons) {
	held := [6]bool{b.Up, b.Down, b.Left, b.Right, b.Primary, b.Secondary}
	switch cs.Kind {
	case SchemeKeyboardA, SchemeKeyboardB:
		layout := layoutA
		if cs.Kind == SchemeKeyboardB {
			layout = layoutB
		}
		for i, k := range layout {
			si.keys[k] = held[i]
		}
	case SchemeController:
		// Primary and secondary share buttons with right and left.
		si.HoldPad(cs.DeviceIndex(), false, PadUp, PadDown, PadLeft, PadRight)
		for i, b := range padLayout {
			if held[i] {
				si.HoldPad(cs.DeviceIndex(), true, b)
			}
		}
	}
}

func (si *ScriptedInput) IsKeyHeld(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return si.keys[k]
}

func (si *ScriptedInput) IsPadButtonHeld(device int, b PadButton) bool {
	p, ok := si.pads[device]
	if !ok || b < 0 || b >= padButtonCount {
		return false
	}
	return p[b]
}

// Headless runs a match without a window at a fixed frame time.
type Headless struct {
	Match *Match
	Input *ScriptedInput

	cfg    Config
	id     string
	rng    *rand.Rand
	random bool // re-roll every participant's buttons each frame
}

// HeadlessOption configures a Headless run.
type HeadlessOption func(*Headless)

// WithConfig replaces the whole match configuration.
func WithConfig(cfg Config) HeadlessOption {
	return func(h *Headless) { h.cfg = cfg }
}

// WithPlayers sets the number of participating players.
func WithPlayers(n int) HeadlessOption {
	return func(h *Headless) { h.cfg.PlayerCount = n }
}

// WithSeed sets the RNG seed used by random input.
func WithSeed(seed int64) HeadlessOption {
	return func(h *Headless) {
		h.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation input only
	}
}

// WithRandomInput makes every participant mash random buttons.
func WithRandomInput() HeadlessOption {
	return func(h *Headless) { h.random = true }
}

// WithVerbose records per-splat paint entries in the match log.
func WithVerbose(v bool) HeadlessOption {
	return func(h *Headless) { h.cfg.VerboseLog = v }
}

// WithMatchID sets the id stamped into the match log.
func WithMatchID(id string) HeadlessOption {
	return func(h *Headless) { h.id = id }
}

// NewHeadless builds a match from the options. It fails only when the
// resulting configuration is invalid.
func NewHeadless(opts ...HeadlessOption) (*Headless, error) {
	h := &Headless{
		cfg: DefaultConfig(),
		id:  "headless",
		rng: rand.New(rand.NewSource(1)), // #nosec G404 -- deterministic default
	}
	for _, o := range opts {
		o(h)
	}
	if err := h.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("headless match: %w", err)
	}
	h.Match = NewMatch(h.cfg, h.id)
	h.Input = NewScriptedInput()
	return h, nil
}

// Start presses Play and runs frames until the round is under way.
func (h *Headless) Start() {
	h.Match.Apply(ActionPlay)
	for h.Match.Mode() != ModeGame {
		h.Step(1)
	}
}

// Step advances the match by n frames.
func (h *Headless) Step(n int) {
	for i := 0; i < n; i++ {
		if h.random {
			h.rollInput()
		}
		h.Match.Update(headlessDT, h.Input)
	}
}

// StepSeconds advances the match by at least s seconds.
func (h *Headless) StepSeconds(s float64) {
	h.Step(int(s/headlessDT) + 1)
}

// RunUntil steps until cond holds or maxFrames elapse, and reports whether
// cond was met.
func (h *Headless) RunUntil(cond func(*Match) bool, maxFrames int) bool {
	for i := 0; i < maxFrames; i++ {
		if cond(h.Match) {
			return true
		}
		h.Step(1)
	}
	return cond(h.Match)
}

// rollInput holds random buttons for every participant. Jump is held in
// bursts so both short hops and full jumps occur.
func (h *Headless) rollInput() {
	for _, p := range h.Match.Participants() {
		b := Buttons{
			Up:    h.rng.Float64() < 0.3,
			Left:  h.rng.Float64() < 0.4,
			Right: h.rng.Float64() < 0.4,
		}
		h.Input.HoldButtons(p.Controls, b)
	}
}
