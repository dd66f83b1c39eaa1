package game

import (
	"fmt"
	"image"
	_ "image/png" // bundled art is PNG
	"io/fs"

	"github.com/Garsondee/color-the-map/internal/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/draw"
)

// spriteAsset describes where a sprite comes from and the size it is
// scaled to on load. A zero size keeps the file's own dimensions.
type spriteAsset struct {
	path string
	w, h int
}

var spriteAssets = [spriteCount]spriteAsset{
	SpriteLevel:     {path: assets.Level, w: ScreenWidth, h: ScreenHeight},
	SpritePlayer1:   {path: assets.Player1},
	SpritePlayer2:   {path: assets.Player2},
	SpritePlayer3:   {path: assets.Player3},
	SpritePlayer4:   {path: assets.Player4},
	SpriteWipeLeft:  {path: assets.TransitionLeft, w: ScreenWidth / 2, h: ScreenHeight},
	SpriteWipeRight: {path: assets.TransitionRight, w: ScreenWidth / 2, h: ScreenHeight},
}

// Sprites holds every texture the renderer draws, indexed by SpriteID.
type Sprites [spriteCount]*ebiten.Image

// LoadSprites decodes and sizes every sprite from fsys. Any failure is
// returned; the game cannot run with missing art.
func LoadSprites(fsys fs.FS) (*Sprites, error) {
	var sp Sprites
	for id, a := range spriteAssets {
		tex, src, err := ebitenutil.NewImageFromFileSystem(fsys, a.path)
		if err != nil {
			return nil, fmt.Errorf("load sprite %s: %w", a.path, err)
		}
		if a.w > 0 && (src.Bounds().Dx() != a.w || src.Bounds().Dy() != a.h) {
			tex.Deallocate()
			tex = ebiten.NewImageFromImage(scaleImage(src, a.w, a.h))
		}
		sp[id] = tex
	}
	return &sp, nil
}

// scaleImage resamples src to w×h with bilinear filtering.
func scaleImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
