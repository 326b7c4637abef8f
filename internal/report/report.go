// Package report builds the canonical, deterministic record of a run.
//
// Determinism constraints:
//   - No timestamps, pointers, or any runtime-dependent values.
//   - JSON field order is fixed by a hand-written encoder.
//   - The report digest is sha256 over the canonical bytes.
//
// The report is observational only and must never affect sort output.
// Byte-for-byte stability across runs and machines is required: two runs
// over identical input must produce identical report bytes.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// CaseEntry records the work done for one test case.
type CaseEntry struct {
	// Index is the 1-based case position in the input stream.
	Index int

	// Length is the number of values in the case.
	Length int

	// Comparisons and Swaps count the sort's work. Both are functions of
	// the input values alone, so they are stable across runs and machines.
	Comparisons int
	Swaps       int
}

// Report is the canonical record of a run.
type Report struct {
	// OutputDigest is the hex sha256 of the bytes written to the output
	// stream. It lets two runs be compared without keeping the output.
	OutputDigest string

	// Cases holds one entry per completed test case, ordered by Index.
	Cases []CaseEntry
}

// Canonicalize sorts entries by case index. Entries are produced
// sequentially so this is normally a no-op; it exists so the canonical
// bytes can never depend on recording order.
func (r *Report) Canonicalize() {
	if r == nil {
		return
	}
	sort.SliceStable(r.Cases, func(i, j int) bool { return r.Cases[i].Index < r.Cases[j].Index })
}

// Validate rejects reports that could not have come from a real run.
func (r *Report) Validate() error {
	for i, c := range r.Cases {
		if c.Index <= 0 {
			return fmt.Errorf("cases[%d]: index must be positive (got %d)", i, c.Index)
		}
		if c.Length < 0 || c.Comparisons < 0 || c.Swaps < 0 {
			return fmt.Errorf("cases[%d]: negative counter", i)
		}
	}
	return nil
}

// CanonicalJSON returns the canonical encoding: fixed field order, no
// whitespace, entries in Index order. It canonicalizes a copy so the
// caller's slice is not mutated.
func (r Report) CanonicalJSON() ([]byte, error) {
	cp := Report{
		OutputDigest: r.OutputDigest,
		Cases:        append([]CaseEntry(nil), r.Cases...),
	}
	cp.Canonicalize()
	if err := cp.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"outputDigest":`)
	writeJSONString(&buf, cp.OutputDigest)
	buf.WriteString(`,"cases":[`)
	for i, c := range cp.Cases {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"index":%d,"length":%d,"comparisons":%d,"swaps":%d}`,
			c.Index, c.Length, c.Comparisons, c.Swaps)
	}
	buf.WriteString("]}")
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	// json.Marshal of a string cannot fail.
	b, _ := json.Marshal(s)
	buf.Write(b)
}
