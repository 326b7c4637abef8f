package report

import "sync"

// Recorder is a concurrency-safe in-memory collector of case entries.
//
// A nil *Recorder is a valid no-op sink, so the pipeline does not need a
// separate "reporting disabled" path.
type Recorder struct {
	mu      sync.Mutex
	entries []CaseEntry
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Record(entry CaseEntry) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the recorded entries.
func (r *Recorder) Snapshot() []CaseEntry {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CaseEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Report builds a canonical Report from the recorded entries. The result
// is independent from the recorder (entries are copied).
func (r *Recorder) Report(outputDigest string) Report {
	rep := Report{OutputDigest: outputDigest, Cases: r.Snapshot()}
	rep.Canonicalize()
	return rep
}
