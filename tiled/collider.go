package tiled

import "github.com/automoto/terra-firma/components"

// Property names read from map objects
const (
	PropColliderType = "collider_type"
	PropHitbox       = "hitbox"
	PropWidth        = "width"
	PropHeight       = "height"
)

// Hitbox is a collider size in map pixels
type Hitbox struct {
	Width, Height float64
}

var rigidBodies = map[string]components.RigidBody{
	"Static":    components.RigidBodyStatic,
	"Kinematic": components.RigidBodyKinematic,
	"Dynamic":   components.RigidBodyDynamic,
}

// ColliderFromProperties derives the physics body of a map object.
//
// collider_type selects the body kind and defaults to Static. The hitbox class
// property sizes the collider: width and height when both are set, a square of
// whichever one is set otherwise, and fallback when neither is. Values of the
// wrong type are ignored.
func ColliderFromProperties(props Properties, fallback Hitbox) (components.RigidBody, Hitbox) {
	body := components.RigidBodyStatic
	if s, ok := props.GetString(PropColliderType); ok {
		if b, known := rigidBodies[s]; known {
			body = b
		}
	}

	hitbox := fallback
	if members, ok := props.GetClass(PropHitbox); ok {
		w, hasW := members.GetFloat(PropWidth)
		h, hasH := members.GetFloat(PropHeight)
		switch {
		case hasW && hasH:
			hitbox = Hitbox{Width: w, Height: h}
		case hasW:
			hitbox = Hitbox{Width: w, Height: w}
		case hasH:
			hitbox = Hitbox{Width: h, Height: h}
		}
	}
	return body, hitbox
}
