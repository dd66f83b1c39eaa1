package game

// Key is a logical keyboard key the game reads. The back-end maps each one to
// a physical key.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyF
	KeyG
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyH
	KeyJ
	keyCount
)

// PadButton is a button of a gamepad's left face cluster.
type PadButton int

const (
	PadUp PadButton = iota
	PadDown
	PadLeft
	PadRight
	padButtonCount
)

// InputBackend answers held-state queries for the current frame.
type InputBackend interface {
	IsKeyHeld(k Key) bool
	IsPadButtonHeld(device int, b PadButton) bool
}

// SchemeKind tags a ControlScheme.
type SchemeKind int

const (
	SchemeKeyboardA SchemeKind = iota // WASD, F, G
	SchemeKeyboardB                   // arrows, H, J
	SchemeController
)

func (k SchemeKind) String() string {
	switch k {
	case SchemeKeyboardA:
		return "keyboard-a"
	case SchemeKeyboardB:
		return "keyboard-b"
	case SchemeController:
		return "controller"
	default:
		return "unknown"
	}
}

// ControlScheme is the control source assigned to a player. Slot is only
// meaningful for SchemeController.
type ControlScheme struct {
	Kind SchemeKind
	Slot int
}

// KeyboardA returns the WASD layout.
func KeyboardA() ControlScheme { return ControlScheme{Kind: SchemeKeyboardA} }

// KeyboardB returns the arrow-key layout.
func KeyboardB() ControlScheme { return ControlScheme{Kind: SchemeKeyboardB} }

// Controller returns the gamepad scheme for the given player slot.
func Controller(slot int) ControlScheme {
	return ControlScheme{Kind: SchemeController, Slot: slot}
}

// controllerSlotOffset is subtracted from a controller slot to get the
// gamepad device index: slots 0 and 1 belong to the keyboard players, so
// slot 2 reads the first gamepad.
const controllerSlotOffset = 2

// DeviceIndex returns the gamepad device read by a controller scheme.
func (cs ControlScheme) DeviceIndex() int {
	return cs.Slot - controllerSlotOffset
}

// Buttons is the logical button state of one player for one frame.
type Buttons struct {
	Up, Down, Left, Right bool
	Primary, Secondary    bool
}

// keyLayout lists the six keys of a keyboard scheme in Buttons field order.
type keyLayout [6]Key

var (
	layoutA = keyLayout{KeyW, KeyS, KeyA, KeyD, KeyF, KeyG}
	layoutB = keyLayout{KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight, KeyH, KeyJ}
)

// padLayout reuses Right and Left as primary and secondary.
var padLayout = [6]PadButton{PadUp, PadDown, PadLeft, PadRight, PadRight, PadLeft}

// ReadButtons resolves a control scheme against the back-end. Every field
// reflects the held state only; there is no edge detection or debounce.
func ReadButtons(cs ControlScheme, in InputBackend) Buttons {
	var held [6]bool
	switch cs.Kind {
	case SchemeKeyboardA, SchemeKeyboardB:
		layout := layoutA
		if cs.Kind == SchemeKeyboardB {
			layout = layoutB
		}
		for i, k := range layout {
			held[i] = in.IsKeyHeld(k)
		}
	case SchemeController:
		dev := cs.DeviceIndex()
		for i, b := range padLayout {
			held[i] = in.IsPadButtonHeld(dev, b)
		}
	}
	return Buttons{
		Up:        held[0],
		Down:      held[1],
		Left:      held[2],
		Right:     held[3],
		Primary:   held[4],
		Secondary: held[5],
	}
}
