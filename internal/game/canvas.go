package game

import (
	"image"
	"image/color"
	"math"

	"github.com/kamstrup/intmap"
)

// Canvas is the territory buffer painted during ColorTheMap. It is owned by
// the simulation and handed to the renderer read-only once per frame.
type Canvas struct {
	img    *image.RGBA
	dirty  bool
	splats int // paint calls since the last Clear
}

// NewCanvas returns a fully transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		dirty: true,
	}
}

// Image exposes the pixel buffer. Callers must not modify it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Splats returns the number of Paint calls since the last Clear.
func (c *Canvas) Splats() int { return c.splats }

// Dirty reports whether the canvas changed since MarkClean.
func (c *Canvas) Dirty() bool { return c.dirty }

// MarkClean is called by the renderer after uploading the pixels.
func (c *Canvas) MarkClean() { c.dirty = false }

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
	c.splats = 0
	c.dirty = true
}

// Paint draws a solid disc of PaintRadius in col. Paint points carry a
// one-radius offset from the grid they were generated on; the disc is
// centred back on the grid point. Pixels are written without blending so
// scoring can match colours exactly.
func (c *Canvas) Paint(pt Vec2, col color.RGBA) {
	cx := int(math.Round(pt.X - PaintRadius))
	cy := int(math.Round(pt.Y - PaintRadius))
	r := int(PaintRadius)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			c.img.SetRGBA(cx+dx, cy+dy, col)
		}
	}
	c.splats++
	c.dirty = true
}

// Standings is the territory split computed from a canvas scan.
type Standings struct {
	Counts [MaxPlayers]int
	Shares [MaxPlayers]float64
	Total  int // classified pixels; zero means nothing was painted
}

// Leader returns the slot with the largest share, the lowest slot on a tie,
// or -1 when nothing was classified.
func (s Standings) Leader() int {
	if s.Total == 0 {
		return -1
	}
	best := 0
	for i := 1; i < MaxPlayers; i++ {
		if s.Shares[i] > s.Shares[best] {
			best = i
		}
	}
	return best
}

func packRGB(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// histogram counts the pixels of every distinct RGB value, ignoring alpha.
func (c *Canvas) histogram() (*intmap.Map[uint32, int], int) {
	hist := intmap.New[uint32, int](64)
	pix := c.img.Pix
	n := 0
	for i := 0; i+3 < len(pix); i += 4 {
		key := uint32(pix[i])<<16 | uint32(pix[i+1])<<8 | uint32(pix[i+2])
		v, _ := hist.Get(key)
		hist.Put(key, v+1)
		n++
	}
	return hist, n
}

// Score classifies every pixel by exact RGB match against the colours of
// the first count players, in slot order, and returns each player's share
// of the classified pixels. Unmatched pixels are not counted.
//
// With legacy set the classifier keeps a known anomaly of its branch
// logic: the third and fourth branches also count a pixel when count
// reaches 3 (or 4) whether or not it matches, so with three or more players
// every pixel not claimed by players 1 and 2 is credited to player 3,
// background included. Legacy mode always tests all four colours.
func (c *Canvas) Score(colors [MaxPlayers]color.RGBA, count int, legacy bool) Standings {
	hist, pixels := c.histogram()
	lookup := func(col color.RGBA) int {
		v, _ := hist.Get(packRGB(col))
		return v
	}

	var s Standings
	claimed := make(map[uint32]bool, MaxPlayers)
	take := func(i int) {
		key := packRGB(colors[i])
		if claimed[key] {
			return
		}
		claimed[key] = true
		s.Counts[i] = lookup(colors[i])
	}

	if legacy {
		take(0)
		take(1)
		rest := pixels - s.Counts[0] - s.Counts[1]
		switch {
		case count >= 3:
			s.Counts[2] = rest
		default:
			take(2)
			take(3)
		}
	} else {
		for i := 0; i < count && i < MaxPlayers; i++ {
			take(i)
		}
	}

	for _, n := range s.Counts {
		s.Total += n
	}
	if s.Total == 0 {
		return s
	}
	for i, n := range s.Counts {
		s.Shares[i] = float64(n) / float64(s.Total)
	}
	return s
}
