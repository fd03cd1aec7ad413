package replay

import "github.com/younwookim/platformquest/internal/application/input"

// Replayer feeds recorded input back one tick at a time.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Next returns the input of the current frame and advances. ok is false
// once every frame has been played.
func (r *Replayer) Next() (input.Snapshot, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.Idle, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Snapshot(), true
}

// Done reports whether every frame has been played.
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() uint64 {
	return r.data.Seed
}
