package core

import (
	"bufio"
	"io"
	"strconv"
)

// CaseWriter writes sorted cases one per line: values single-space
// separated, no trailing space, newline terminated. An empty case yields a
// bare newline.
//
// Writes are buffered and flushed per case, so a run aborted at case k
// leaves the output for cases 1..k-1 complete.
type CaseWriter struct {
	w *bufio.Writer
}

func NewCaseWriter(w io.Writer) *CaseWriter {
	return &CaseWriter{w: bufio.NewWriter(w)}
}

// WriteCase emits one result line and flushes it.
func (cw *CaseWriter) WriteCase(values []int) error {
	for i, v := range values {
		if i > 0 {
			if err := cw.w.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := cw.w.WriteString(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	if err := cw.w.WriteByte('\n'); err != nil {
		return err
	}
	return cw.w.Flush()
}
