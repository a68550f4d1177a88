package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
}

// AnimationID names a clip in a character's sprite sheet
type AnimationID string

const (
	AnimWalk AnimationID = "walk"
)

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[AnimationID]AnimationDef{
	"player": {
		// 20 fps at 60 TPS
		AnimWalk: {First: 0, Last: 3, Step: 1, Speed: 2},
	},
}
