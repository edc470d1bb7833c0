// Package progress carries progress notifications from long-running jobs to
// whatever is displaying them.
package progress

// ProgressUpdate is one progress notification from a job.
type ProgressUpdate struct {
	// JobIndex identifies the job among those running concurrently.
	JobIndex int
	// Value is the completed fraction, 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives the completed fraction of a single job.
type ProgressCallback func(progress float64)

// ChannelCallback returns a callback that forwards progress for job index
// to ch. Sends never block: when the buffer is full the update is dropped,
// since a newer one will follow.
func ChannelCallback(ch chan<- ProgressUpdate, index int) ProgressCallback {
	if ch == nil {
		return func(float64) {}
	}
	return func(v float64) {
		select {
		case ch <- ProgressUpdate{JobIndex: index, Value: v}:
		default:
		}
	}
}

// Throttle wraps cb so it fires only when progress has advanced by at least
// step since the last call, plus always at completion.
func Throttle(cb ProgressCallback, step float64) ProgressCallback {
	if cb == nil {
		return func(float64) {}
	}
	last := -1.0
	return func(v float64) {
		if v >= 1 || v-last >= step {
			last = v
			cb(v)
		}
	}
}
