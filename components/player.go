package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Speed     float64
	Direction math.Vec2
	Facing    float64 // -1 left, 1 right
	Map       string // logical name of the map the player walks on

	Object *resolv.Object
	space  *resolv.Space
}

// Space returns the collision space the player's body is registered in.
func (p *PlayerData) Space() *resolv.Space {
	return p.space
}

// MoveToSpace registers the player's body in s, leaving any previous space.
func (p *PlayerData) MoveToSpace(s *resolv.Space) {
	if p.space == s {
		return
	}
	if p.space != nil {
		p.space.Remove(p.Object)
	}
	p.space = s
	if s != nil {
		s.Add(p.Object)
	}
}

var Player = donburi.NewComponentType[PlayerData]()
