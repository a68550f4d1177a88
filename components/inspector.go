package components

import "github.com/yohamta/donburi"

type InspectorData struct {
	Visible bool
}

var Inspector = donburi.NewComponentType[InspectorData]()
