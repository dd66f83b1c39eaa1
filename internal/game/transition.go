package game

// Transition is the two-panel wipe played when a game starts. It closes
// over the screen, holds briefly, then opens again. The mode switch happens
// while it is fully closed.
type Transition struct {
	Progress  float64 // 0 open, 1 closed
	active    bool
	reversing bool
	hold      float64
}

// Start begins a wipe. It returns false if one is already running.
func (t *Transition) Start() bool {
	if t.active {
		return false
	}
	t.active = true
	t.reversing = false
	t.hold = 0
	return true
}

// Active reports whether a wipe is running.
func (t *Transition) Active() bool { return t.active }

// Update advances the wipe and reports whether it reached fully closed on
// this frame.
func (t *Transition) Update(dt float64) bool {
	if !t.active {
		return false
	}
	if !t.reversing {
		t.Progress += dt * transitionRate
		if t.Progress >= 1 {
			t.Progress = 1
			t.hold = 0
			t.reversing = true
			return true
		}
		return false
	}

	t.hold += dt
	if t.hold < transitionPause {
		return false
	}
	t.Progress -= dt * transitionRate
	if t.Progress <= 0 {
		t.Progress = 0
		t.active = false
		t.reversing = false
	}
	return false
}

// PanelOffset is how far each panel has slid in, in [0,1]. The panels
// arrive at half progress and stay closed until the wipe reverses past it.
func (t *Transition) PanelOffset() float64 {
	return min(t.Progress*2, 1)
}
