package session

import (
	"encoding/json"
	"fmt"
	"time"
)

// CurrentVersion is written into every encoded snapshot. Decode rejects
// other versions.
const CurrentVersion = 1

// Snapshot is the saved state of one websocket session: the progress
// values of each slider it hosted, keyed by slider id.
type Snapshot struct {
	Version int              `json:"v"`
	ID      string           `json:"id"`
	SavedAt time.Time        `json:"savedAt"`
	Values  map[string][]int `json:"values"`
}

// Encode serializes the snapshot, stamping the version and, if unset,
// the save time.
func (s Snapshot) Encode() ([]byte, error) {
	s.Version = CurrentVersion
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now().UTC()
	}
	return json.Marshal(s)
}

// Decode parses data written by Encode.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != CurrentVersion {
		return Snapshot{}, fmt.Errorf("decode snapshot: unsupported version %d", s.Version)
	}
	return s, nil
}
