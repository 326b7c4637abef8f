package core

import (
	"context"
	"fmt"

	"selsort/internal/report"
)

// Runner orchestrates the per-case pipeline: read, sort, verify, write.
//
// Cases are processed strictly sequentially; each case's result line is
// flushed before the next case is read, so a failure at case k never
// disturbs the output of cases 1..k-1.
type Runner struct {
	// Reader supplies test cases.
	Reader *CaseReader

	// Writer emits one result line per case.
	Writer *CaseWriter

	// Verify enables postcondition checks after each sort.
	Verify bool

	// Recorder collects observational per-case statistics.
	// A nil Recorder disables recording.
	Recorder *report.Recorder
}

// RunSummary describes a completed run.
type RunSummary struct {
	// Cases is the number of test cases fully processed.
	Cases int

	// Elements is the total number of values sorted across all cases.
	Elements int
}

// Run consumes the whole input stream.
//
// Cancellation is honored between cases: a case already being processed is
// finished and flushed before ctx.Err() is returned.
func (r *Runner) Run(ctx context.Context) (RunSummary, error) {
	var summary RunSummary

	count, err := r.Reader.ReadCount()
	if err != nil {
		return summary, err
	}

	var verifier Verifier
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		tc, err := r.Reader.Next()
		if err != nil {
			return summary, err
		}

		var original []int
		if r.Verify {
			original = make([]int, len(tc.Values))
			copy(original, tc.Values)
		}

		stats := SelectionSort(tc.Values)

		if r.Verify {
			if err := verifier.Check(tc.Index, original, tc.Values); err != nil {
				return summary, err
			}
		}

		if err := r.Writer.WriteCase(tc.Values); err != nil {
			return summary, fmt.Errorf("writing test case %d: %w", tc.Index, err)
		}

		r.Recorder.Record(report.CaseEntry{
			Index:       tc.Index,
			Length:      len(tc.Values),
			Comparisons: stats.Comparisons,
			Swaps:       stats.Swaps,
		})

		summary.Cases++
		summary.Elements += len(tc.Values)
	}

	return summary, nil
}
