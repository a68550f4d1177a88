package systems

import (
	gomath "math"

	"github.com/automoto/terra-firma/components"
	"github.com/automoto/terra-firma/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var solidTags = []string{tags.ResolvStatic, tags.ResolvKinematic, tags.ResolvDynamic}

// sweep returns how far obj may travel along one axis before it touches
// anything tagged in blockers. Dynamic bodies it runs into get pushed by push.
// The resolv check only narrows candidates to shared cells; bodies beside or
// behind obj are filtered out here.
func sweep(obj *resolv.Object, dx, dy, push float64, blockers ...string) (float64, float64) {
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	check := obj.Check(dx, dy, blockers...)
	if check == nil {
		return dx, dy
	}

	wantX, wantY := dx, dy
	for _, other := range check.ObjectsByTags(blockers...) {
		if !inPath(obj, other, wantX, wantY) {
			continue
		}
		contact := check.ContactWithObject(other)
		if dx != 0 {
			dx = gomath.Copysign(gomath.Min(gomath.Abs(dx), gomath.Abs(contact.X())), dx)
		}
		if dy != 0 {
			dy = gomath.Copysign(gomath.Min(gomath.Abs(dy), gomath.Abs(contact.Y())), dy)
		}
		if push > 0 && other.HasTags(tags.ResolvDynamic) {
			if c := colliderOf(other); c != nil {
				c.Velocity.X = faster(c.Velocity.X, wantX*push)
				c.Velocity.Y = faster(c.Velocity.Y, wantY*push)
			}
		}
	}
	return dx, dy
}

// inPath reports whether other lies ahead of obj along a single-axis move and
// within reach of it.
func inPath(obj, other *resolv.Object, dx, dy float64) bool {
	const eps = 1e-6
	switch {
	case dx > 0:
		gap := other.X - (obj.X + obj.W)
		return overlaps(obj.Y, obj.H, other.Y, other.H) && gap >= -eps && gap < dx
	case dx < 0:
		gap := obj.X - (other.X + other.W)
		return overlaps(obj.Y, obj.H, other.Y, other.H) && gap >= -eps && gap < -dx
	case dy > 0:
		gap := other.Y - (obj.Y + obj.H)
		return overlaps(obj.X, obj.W, other.X, other.W) && gap >= -eps && gap < dy
	case dy < 0:
		gap := obj.Y - (other.Y + other.H)
		return overlaps(obj.X, obj.W, other.X, other.W) && gap >= -eps && gap < -dy
	}
	return false
}

func overlaps(a, aw, b, bw float64) bool {
	return a < b+bw && b < a+aw
}

// clampToSpace keeps obj inside the bounds of its space.
func clampToSpace(obj *resolv.Object, width, height float64) {
	obj.X = gomath.Max(0, gomath.Min(obj.X, width-obj.W))
	obj.Y = gomath.Max(0, gomath.Min(obj.Y, height-obj.H))
}

// colliderOf returns the collider component behind a tile's resolv object.
func colliderOf(obj *resolv.Object) *components.ColliderData {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Collider) {
		return nil
	}
	return components.Collider.Get(entry)
}

// colliderSpace finds the collision space a tile collider lives in.
func colliderSpace(w donburi.World, tile *donburi.Entry) *components.SpaceData {
	data := components.Tile.Get(tile)
	if !w.Valid(data.Tilemap) {
		return nil
	}
	tm := components.Tilemap.Get(w.Entry(data.Tilemap))
	if !w.Valid(tm.Instance) {
		return nil
	}
	inst := w.Entry(tm.Instance)
	if !inst.HasComponent(components.Space) {
		return nil
	}
	space := components.Space.Get(inst)
	if space.Space == nil {
		return nil
	}
	return space
}

// faster keeps whichever of v and push moves further.
func faster(v, push float64) float64 {
	if gomath.Abs(push) > gomath.Abs(v) {
		return push
	}
	return v
}
