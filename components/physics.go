package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// RigidBody is the physics body kind of a collider
type RigidBody int

const (
	RigidBodyStatic RigidBody = iota
	RigidBodyKinematic
	RigidBodyDynamic
)

func (b RigidBody) String() string {
	switch b {
	case RigidBodyStatic:
		return "Static"
	case RigidBodyKinematic:
		return "Kinematic"
	case RigidBodyDynamic:
		return "Dynamic"
	}
	return "Unknown"
}

// ColliderData is a rectangular collider attached to a tile object
type ColliderData struct {
	*resolv.Object
	Body     RigidBody
	Size     math.Vec2 // world pixels
	Velocity math.Vec2 // space pixels per tick, dynamic bodies only
}

// SpaceData is the collision space of one map instance. Space coordinates are
// y-down with Origin as the world position of the space's top-left corner.
type SpaceData struct {
	*resolv.Space
	Origin        math.Vec2
	Width, Height int // world pixels
}

// ToSpace converts a world point to space coordinates.
func (s *SpaceData) ToSpace(world math.Vec2) math.Vec2 {
	return math.Vec2{X: world.X - s.Origin.X, Y: s.Origin.Y - world.Y}
}

// ToWorld converts a space point to world coordinates.
func (s *SpaceData) ToWorld(p math.Vec2) math.Vec2 {
	return math.Vec2{X: p.X + s.Origin.X, Y: s.Origin.Y - p.Y}
}

var (
	Collider = donburi.NewComponentType[ColliderData]()
	Space    = donburi.NewComponentType[SpaceData]()
)
