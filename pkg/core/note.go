package core

import (
	"encoding/json"
	"time"
)

// NoteInfo describes one markdown file present in the notes root.
//
// Title is the natural key: reads, writes and deletes address notes by
// title. ID is the stable identifier stored in the note's sidecar and only
// serves identity needs that must survive independently of the filename
// (e.g. list keys in a view).
type NoteInfo struct {
	ID             string
	Title          string
	LastEditedTime time.Time
}

type noteInfoJSON struct {
	ID             string `json:"id" yaml:"id"`
	Title          string `json:"title" yaml:"title"`
	LastEditedTime int64  `json:"lastEditedTime" yaml:"lastEditedTime"`
}

// MarshalJSON encodes LastEditedTime as Unix milliseconds.
func (n NoteInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.wire())
}

// UnmarshalJSON decodes the representation produced by MarshalJSON.
func (n *NoteInfo) UnmarshalJSON(data []byte) error {
	var w noteInfoJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	n.ID = w.ID
	n.Title = w.Title
	n.LastEditedTime = time.UnixMilli(w.LastEditedTime)
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (n NoteInfo) MarshalYAML() (any, error) {
	return n.wire(), nil
}

func (n NoteInfo) wire() noteInfoJSON {
	return noteInfoJSON{
		ID:             n.ID,
		Title:          n.Title,
		LastEditedTime: n.LastEditedTime.UnixMilli(),
	}
}
