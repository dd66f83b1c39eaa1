package game

// Contact is one obstacle touched by a player this frame, with the paint
// points generated from the overlap.
type Contact struct {
	Obstacle int // index into Level.Obstacles
	Overlap  Rect
	Points   []Vec2
}

// broadPhaseMargin grows the box used for the candidate query so that an
// obstacle reached after an earlier push-out is still tested.
const broadPhaseMargin = levelCellSize

// ResolveCollisions pushes p out of every obstacle and every other player
// box it overlaps, one axis per overlap, and returns the obstacle contacts.
// others must be a snapshot taken before any player moved this frame.
//
// Player boxes never ground p. When p touched no obstacle at all, its
// grounded flag is cleared.
func ResolveCollisions(p *Player, lv *Level, others []Rect) []Contact {
	var contacts []Contact

	query := p.Rect()
	query.X -= broadPhaseMargin
	query.Y -= broadPhaseMargin
	query.W += 2 * broadPhaseMargin
	query.H += 2 * broadPhaseMargin

	for _, i := range lv.Candidates(query) {
		obs := lv.Obstacles[i].Rect
		ov, ok := p.Rect().Overlap(obs)
		if !ok {
			continue
		}
		pushOut(p, obs, ov, true)
		contacts = append(contacts, Contact{
			Obstacle: i,
			Overlap:  ov,
			Points:   PaintPoints(ov),
		})
	}

	for _, other := range others {
		ov, ok := p.Rect().Overlap(other)
		if !ok {
			continue
		}
		pushOut(p, other, ov, false)
	}

	if len(contacts) == 0 {
		p.OnGround = false
	}
	return contacts
}

// pushOut moves p out of target along the axis of least penetration and
// zeroes the velocity component of that axis only. Landing on top of a
// grounding target sets OnGround.
func pushOut(p *Player, target, ov Rect, grounding bool) {
	self := p.Rect().Center()
	c := target.Center()

	if ov.W < ov.H {
		if self.X < c.X {
			p.Position.X -= ov.W
		} else {
			p.Position.X += ov.W
		}
		p.Velocity.X = 0
		return
	}

	if self.Y < c.Y {
		p.Position.Y -= ov.H
		if grounding {
			p.OnGround = true
		}
	} else {
		p.Position.Y += ov.H
	}
	p.Velocity.Y = 0
}

// PaintPoints covers an overlap rectangle with a grid of points spaced one
// PaintRadius apart, each offset by one radius on both axes. A thin strip
// still gets a full row or column. Only an empty grid falls back to a single
// centred point, so every touch leaves at least one mark.
func PaintPoints(ov Rect) []Vec2 {
	const step = PaintRadius
	var pts []Vec2
	for x := ov.X; x < ov.X+ov.W; x += step {
		for y := ov.Y; y < ov.Y+ov.H; y += step {
			pts = append(pts, Vec2{X: x + PaintRadius, Y: y + PaintRadius})
		}
	}
	if len(pts) == 0 {
		pts = append(pts, Vec2{
			X: ov.X + ov.W/2 + PaintRadius,
			Y: ov.Y + ov.H/2 + PaintRadius,
		})
	}
	return pts
}
