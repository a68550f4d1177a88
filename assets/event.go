package assets

// EventKind describes what happened to an asset
type EventKind int

const (
	EventAdded EventKind = iota
	EventModified
	EventRemoved
)

func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "Added"
	case EventModified:
		return "Modified"
	case EventRemoved:
		return "Removed"
	}
	return "Unknown"
}

// Event is emitted by a Store when a handle's data becomes available, changes
// or goes away.
type Event struct {
	Kind EventKind
	ID   AssetID
	Path string
}
