// Package gen produces well-formed fixtures: an input stream for the sorter
// plus the exact output the sorter must emit for it.
package gen

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"selsort/internal/core"
)

// Spec describes the fixture to generate.
type Spec struct {
	// Cases is the number of test cases.
	Cases int

	// Size is the length of each array.
	Size int

	// Max is the exclusive upper bound for generated values.
	// Values are uniform in [0, Max).
	Max int64
}

func (s Spec) validate() error {
	if s.Cases < 0 {
		return fmt.Errorf("cases must be >= 0 (got %d)", s.Cases)
	}
	if s.Size < 0 {
		return fmt.Errorf("size must be >= 0 (got %d)", s.Size)
	}
	if s.Max <= 0 {
		return fmt.Errorf("max must be > 0 (got %d)", s.Max)
	}
	return nil
}

// Generate writes a well-formed input stream to in and the expected sorted
// output to want. Expected lines are produced with the same selection sort
// routine the tool ships, so the pair is self-consistent by construction.
func Generate(spec Spec, in io.Writer, want io.Writer) error {
	if err := spec.validate(); err != nil {
		return err
	}

	bin := bufio.NewWriter(in)
	wantCases := core.NewCaseWriter(want)

	if _, err := fmt.Fprintln(bin, spec.Cases); err != nil {
		return err
	}
	for c := 0; c < spec.Cases; c++ {
		arr, err := randomArray(spec.Size, spec.Max)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(bin, spec.Size); err != nil {
			return err
		}
		if err := writeValues(bin, arr); err != nil {
			return err
		}

		core.SelectionSort(arr)
		if err := wantCases.WriteCase(arr); err != nil {
			return err
		}
	}

	return bin.Flush()
}

func randomArray(size int, max int64) ([]int, error) {
	bound := big.NewInt(max)
	arr := make([]int, size)
	for i := range arr {
		v, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return nil, fmt.Errorf("generating value: %w", err)
		}
		arr[i] = int(v.Int64())
	}
	return arr, nil
}

func writeValues(w *bufio.Writer, arr []int) error {
	for i, v := range arr {
		if i > 0 {
			if err := w.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}
