package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingInput records which pad devices were queried.
type recordingInput struct {
	ScriptedInput
	devices map[int]bool
}

func (ri *recordingInput) IsPadButtonHeld(device int, b PadButton) bool {
	ri.devices[device] = true
	return ri.ScriptedInput.IsPadButtonHeld(device, b)
}

func TestReadButtons_KeyboardLayouts(t *testing.T) {
	in := NewScriptedInput()
	in.Hold(true, KeyW, KeyD, KeyF)

	a := ReadButtons(KeyboardA(), in)
	assert.Equal(t, Buttons{Up: true, Right: true, Primary: true}, a)

	// Layout B ignores WASD entirely.
	b := ReadButtons(KeyboardB(), in)
	assert.Equal(t, Buttons{}, b)

	in.Hold(true, KeyArrowLeft, KeyJ)
	b = ReadButtons(KeyboardB(), in)
	assert.Equal(t, Buttons{Left: true, Secondary: true}, b)
}

func TestReadButtons_ControllerSlotReadsOffsetDevice(t *testing.T) {
	ri := &recordingInput{ScriptedInput: *NewScriptedInput(), devices: map[int]bool{}}
	ri.HoldPad(1, true, PadUp)

	got := ReadButtons(Controller(3), ri)
	assert.True(t, got.Up, "slot 3 reads device 1")
	assert.Equal(t, map[int]bool{1: true}, ri.devices)

	assert.Equal(t, 0, Controller(2).DeviceIndex())
	assert.Equal(t, 1, Controller(3).DeviceIndex())
}

func TestReadButtons_ControllerPrimarySharesRight(t *testing.T) {
	in := NewScriptedInput()
	in.HoldPad(0, true, PadRight)
	got := ReadButtons(Controller(2), in)
	assert.Equal(t, Buttons{Right: true, Primary: true}, got)

	in.Release()
	in.HoldPad(0, true, PadLeft)
	got = ReadButtons(Controller(2), in)
	assert.Equal(t, Buttons{Left: true, Secondary: true}, got)
}

func TestReadButtons_HeldStateOnly(t *testing.T) {
	in := NewScriptedInput()
	in.Hold(true, KeyW)
	for i := 0; i < 3; i++ {
		assert.True(t, ReadButtons(KeyboardA(), in).Up, "frame %d", i)
	}
	in.Hold(false, KeyW)
	assert.False(t, ReadButtons(KeyboardA(), in).Up)
}

func TestScriptedInput_HoldButtonsRoundTrip(t *testing.T) {
	in := NewScriptedInput()
	want := Buttons{Up: true, Left: true}
	for _, cs := range []ControlScheme{KeyboardA(), KeyboardB()} {
		t.Run(cs.Kind.String(), func(t *testing.T) {
			in.HoldButtons(cs, want)
			assert.Equal(t, want, ReadButtons(cs, in))
		})
	}
	in.HoldButtons(Controller(2), Buttons{Up: true})
	assert.Equal(t, Buttons{Up: true}, ReadButtons(Controller(2), in))
}

func TestScriptedInput_OutOfRange(t *testing.T) {
	in := NewScriptedInput()
	assert.False(t, in.IsKeyHeld(Key(-1)))
	assert.False(t, in.IsKeyHeld(keyCount))
	assert.False(t, in.IsPadButtonHeld(5, PadUp))
}
