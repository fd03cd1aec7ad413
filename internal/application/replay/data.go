// Package replay records per-tick input of a stage attempt and plays it
// back. A recording plus its seed reproduces the attempt exactly.
package replay

import "github.com/younwookim/platformquest/internal/application/input"

// Version is written into every recording.
const Version = "2.0"

// FrameInput is the input of a single tick as action bit sets.
type FrameInput struct {
	F int    `json:"f" msgpack:"f"`                     // Frame number
	H uint16 `json:"h,omitempty" msgpack:"h,omitempty"` // Held
	E uint16 `json:"e,omitempty" msgpack:"e,omitempty"` // JustPressed
}

// Snapshot converts the frame back into keyboard state.
func (fi FrameInput) Snapshot() input.Snapshot {
	return input.Snapshot{Held: fi.H, Edge: fi.E}
}

// ReplayData contains all data needed to replay a stage attempt
type ReplayData struct {
	Version   string       `json:"version" msgpack:"version"`
	Seed      uint64       `json:"seed" msgpack:"seed"`
	Stage     string       `json:"stage" msgpack:"stage"`
	StartTime string       `json:"startTime" msgpack:"startTime"`
	Frames    []FrameInput `json:"frames" msgpack:"frames"`
}
