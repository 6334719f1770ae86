package core

// EventType represents the type of change observed in the notes root.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a note body made by anyone, including
// external editors.
type Event struct {
	Type      EventType
	Title     string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Title
}
