package game

import (
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// --- Input ---

var ebitenKeys = [keyCount]ebiten.Key{
	KeyW:          ebiten.KeyW,
	KeyA:          ebiten.KeyA,
	KeyS:          ebiten.KeyS,
	KeyD:          ebiten.KeyD,
	KeyF:          ebiten.KeyF,
	KeyG:          ebiten.KeyG,
	KeyArrowUp:    ebiten.KeyArrowUp,
	KeyArrowDown:  ebiten.KeyArrowDown,
	KeyArrowLeft:  ebiten.KeyArrowLeft,
	KeyArrowRight: ebiten.KeyArrowRight,
	KeyH:          ebiten.KeyH,
	KeyJ:          ebiten.KeyJ,
}

var ebitenPadButtons = [padButtonCount]ebiten.StandardGamepadButton{
	PadUp:    ebiten.StandardGamepadButtonLeftTop,
	PadDown:  ebiten.StandardGamepadButtonLeftBottom,
	PadLeft:  ebiten.StandardGamepadButtonLeftLeft,
	PadRight: ebiten.StandardGamepadButtonLeftRight,
}

// ebitenInput answers held-state queries from ebiten. Gamepad device N is
// the Nth connected gamepad in ID order.
type ebitenInput struct {
	pads []ebiten.GamepadID
}

// poll refreshes the connected gamepad list; call once per frame.
func (in *ebitenInput) poll() {
	in.pads = ebiten.AppendGamepadIDs(in.pads[:0])
	slices.Sort(in.pads)
}

func (in *ebitenInput) IsKeyHeld(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return ebiten.IsKeyPressed(ebitenKeys[k])
}

func (in *ebitenInput) IsPadButtonHeld(device int, b PadButton) bool {
	if device < 0 || device >= len(in.pads) || b < 0 || b >= padButtonCount {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(in.pads[device], ebitenPadButtons[b])
}

// --- Rendering ---

// baseTextSize is the pixel height of basicfont.Face7x13; text sizes are
// scale factors relative to it.
const baseTextSize = 13

// ebitenRenderer draws onto the current frame's screen image.
type ebitenRenderer struct {
	screen  *ebiten.Image
	sprites *Sprites
	canvas  *ebiten.Image
	face    *text.GoXFace
}

func newEbitenRenderer(sp *Sprites) *ebitenRenderer {
	return &ebitenRenderer{
		sprites: sp,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// begin targets the screen image of the frame being drawn.
func (r *ebitenRenderer) begin(screen *ebiten.Image) {
	r.screen = screen
}

// DrawSprite draws a sprite with its top-left corner at pos. rotation is
// in degrees around that corner.
func (r *ebitenRenderer) DrawSprite(id SpriteID, pos Vec2, rotation, scale float64, tint color.Color) {
	img := r.sprites[id]
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterLinear
	r.screen.DrawImage(img, op)
}

func (r *ebitenRenderer) DrawRect(rc Rect, c color.Color) {
	vector.FillRect(r.screen, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), c, false)
}

func (r *ebitenRenderer) DrawText(s string, pos Vec2, size float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(size/baseTextSize, size/baseTextSize)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(r.screen, s, r.face, op)
}

func (r *ebitenRenderer) MeasureText(s string, size float64) float64 {
	adv := font.MeasureString(basicfont.Face7x13, s)
	return float64(adv.Ceil()) * size / baseTextSize
}

func (r *ebitenRenderer) UploadCanvas(c *Canvas) {
	b := c.Image().Bounds()
	if r.canvas == nil {
		r.canvas = ebiten.NewImage(b.Dx(), b.Dy())
	}
	if !c.Dirty() {
		return
	}
	r.canvas.WritePixels(c.Image().Pix)
	c.MarkClean()
}

func (r *ebitenRenderer) DrawCanvas() {
	if r.canvas == nil {
		return
	}
	r.screen.DrawImage(r.canvas, nil)
}
