package replay

import (
	"time"

	"github.com/younwookim/platformquest/internal/application/input"
)

// Recorder collects the input of one attempt.
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder starts recording an attempt at stage with seed.
func NewRecorder(seed uint64, stage string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60 TPS
		},
		recording: true,
	}
}

// RecordFrame appends one tick of input.
func (r *Recorder) RecordFrame(s input.Snapshot) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{
		F: len(r.data.Frames),
		H: s.Held,
		E: s.Edge,
	})
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording so far.
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the recording to filename; see Save.
func (r *Recorder) Save(filename string) error {
	return Save(filename, r.data)
}
