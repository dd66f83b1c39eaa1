package game

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// BulletData is the component carried by every bullet entity.
type BulletData struct {
	Rect     Rect
	Velocity Vec2
	TTL      float64 // seconds left before the bullet is removed
}

// Bullet is the donburi component type for bullets.
var Bullet = donburi.NewComponentType[BulletData]()

var bulletColor = color.RGBA{R: 255, G: 109, B: 194, A: 255}

// BulletField owns the bullets of the Dodge minigame.
type BulletField struct {
	world donburi.World
	query *donburi.Query
}

// NewBulletField returns an empty field.
func NewBulletField() *BulletField {
	return &BulletField{
		world: donburi.NewWorld(),
		query: donburi.NewQuery(filter.Contains(Bullet)),
	}
}

// SpawnVolley fires one bullet down every lane from the left edge.
func (bf *BulletField) SpawnVolley() {
	for _, y := range bulletLanes {
		e := bf.world.Create(Bullet)
		Bullet.SetValue(bf.world.Entry(e), BulletData{
			Rect:     Rect{X: bulletStartX, Y: y, W: bulletWidth, H: bulletHeight},
			Velocity: Vec2{X: bulletSpeed},
			TTL:      bulletTTL,
		})
	}
}

// Update moves every bullet, kills the participating players it touches
// and removes expired bullets. A bullet is not consumed by a hit. It
// returns the players killed this frame.
func (bf *BulletField) Update(dt float64, players []*Player) []*Player {
	var expired []donburi.Entity
	var killed []*Player
	bf.query.Each(bf.world, func(entry *donburi.Entry) {
		b := Bullet.Get(entry)
		b.Rect = b.Rect.Translate(b.Velocity.Scale(dt))
		b.TTL -= dt
		if b.TTL <= 0 {
			expired = append(expired, entry.Entity())
		}
		for _, p := range players {
			if p.Dead || !p.Rect().Intersects(b.Rect) {
				continue
			}
			p.Dead = true
			killed = append(killed, p)
		}
	})
	for _, e := range expired {
		bf.world.Remove(e)
	}
	return killed
}

// Len returns the number of live bullets.
func (bf *BulletField) Len() int {
	return bf.query.Count(bf.world)
}

// Each calls fn with every live bullet.
func (bf *BulletField) Each(fn func(BulletData)) {
	bf.query.Each(bf.world, func(entry *donburi.Entry) {
		fn(*Bullet.Get(entry))
	})
}

// Clear removes every bullet.
func (bf *BulletField) Clear() {
	var all []donburi.Entity
	bf.query.Each(bf.world, func(entry *donburi.Entry) {
		all = append(all, entry.Entity())
	})
	for _, e := range all {
		bf.world.Remove(e)
	}
}
