package game

import (
	"image/color"
	"slices"

	"github.com/solarlune/resolv"
)

const (
	levelCellSize = 25      // resolv broad-phase cell, in level units
	tagSolid      = "solid" // resolv tag carried by every obstacle
)

// Obstacle is one piece of immovable level geometry.
type Obstacle struct {
	Rect  Rect
	Color color.RGBA // debug overlay colour
}

// Level is the fixed obstacle layout plus a resolv space used to narrow the
// obstacles a box has to be tested against.
type Level struct {
	Obstacles []Obstacle
	space     *resolv.Space
	query     *resolv.Object
}

var (
	wallColor  = color.RGBA{R: 230, G: 41, B: 55, A: 128}
	floorColor = color.RGBA{R: 0, G: 121, B: 241, A: 128}
)

// DefaultObstacles returns the hardcoded layout that matches the bundled
// level art.
func DefaultObstacles() []Obstacle {
	const w, h = float64(ScreenWidth), float64(ScreenHeight)
	rects := []Rect{
		{0, 0, w, 30}, // ceiling
		{w - 15, 50, 15, 120},
		{w - 15, 240, 15, 120},
		{w - 15, 425, 15, 90},
		{0, 45, 15, 45},
		{0, 160, 15, 30},
		{0, 260, 15, 153},
		{0, 480, 15, 95},
		{1010, 185, 182, 30},
		{9, 119, 117, 30},
		{9, 209, 217, 30},
		{725, 210, 45, 60},
		{590, 210, 40, 60},
		{450, 260, 460, 30},
		{130, 320, 220, 30},
		{975, 330, 40, 60},
		{907, 370, 285, 30},
		{9, 439, 493, 30},
		{655, 485, 395, 30},
		{w - 20 - 30, h - 115, 35, 60},
		{345, h - 115, 50, 60},
	}
	obs := make([]Obstacle, 0, len(rects)+1)
	for _, r := range rects {
		obs = append(obs, Obstacle{Rect: r, Color: wallColor})
	}
	// Ground.
	obs = append(obs, Obstacle{Rect: Rect{10, h - 60, w - 20, 60}, Color: floorColor})
	return obs
}

// NewLevel builds a level from obstacles, registering each in the
// broad-phase space with its index as data.
func NewLevel(obstacles []Obstacle) *Level {
	lv := &Level{
		Obstacles: obstacles,
		space:     resolv.NewSpace(ScreenWidth, ScreenHeight, levelCellSize, levelCellSize),
	}
	for i, o := range obstacles {
		obj := resolv.NewObject(o.Rect.X, o.Rect.Y, o.Rect.W, o.Rect.H, tagSolid)
		obj.Data = i
		lv.space.Add(obj)
	}
	lv.query = resolv.NewObject(0, 0, 1, 1)
	lv.space.Add(lv.query)
	return lv
}

// Candidates returns, in layout order, the indices of the obstacles whose
// broad-phase cells touch r. The result is a superset of the obstacles that
// actually overlap r. It only prunes: callers still test every candidate
// exactly, so results match a full scan of Obstacles.
func (lv *Level) Candidates(r Rect) []int {
	lv.query.X, lv.query.Y = r.X, r.Y
	lv.query.W, lv.query.H = r.W, r.H
	lv.query.Update()

	col := lv.query.Check(0, 0, tagSolid)
	if col == nil {
		return nil
	}
	idx := make([]int, 0, len(col.Objects))
	for _, obj := range col.Objects {
		if i, ok := obj.Data.(int); ok {
			idx = append(idx, i)
		}
	}
	// Resolution order matters; keep it stable regardless of cell order.
	slices.Sort(idx)
	return slices.Compact(idx)
}
