package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// CaseReader reads whitespace-delimited test cases from a stream.
//
// Input format: one token T (test-case count), then per case one token n
// (array length) followed by exactly n value tokens. Tokens may be
// separated by any whitespace; line structure is not significant.
//
// Any deviation from the format is reported as a *InputError carrying the
// 1-based index of the case being read.
type CaseReader struct {
	sc   *bufio.Scanner
	read int // cases consumed so far
}

// NewCaseReader wraps r in a word-splitting scanner.
func NewCaseReader(r io.Reader) *CaseReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &CaseReader{sc: sc}
}

// ReadCount reads the leading test-case count. Call exactly once, before
// the first Next.
func (r *CaseReader) ReadCount() (int, error) {
	t, err := r.nextInt(0, "test case count")
	if err != nil {
		return 0, err
	}
	if t < 0 {
		return 0, malformedf(0, "test case count must be >= 0 (got %d)", t)
	}
	return t, nil
}

// Next reads one test case: the length token, then exactly that many
// values. The returned case owns its Values slice.
func (r *CaseReader) Next() (TestCase, error) {
	idx := r.read + 1

	n, err := r.nextInt(idx, "array length")
	if err != nil {
		return TestCase{}, err
	}
	if n < 0 {
		return TestCase{}, malformedf(idx, "array length must be >= 0 (got %d)", n)
	}

	values := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := r.nextInt(idx, fmt.Sprintf("element %d of %d", i+1, n))
		if err != nil {
			return TestCase{}, err
		}
		values[i] = v
	}

	r.read++
	return TestCase{Index: idx, Values: values}, nil
}

func (r *CaseReader) nextInt(testCase int, what string) (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, fmt.Errorf("reading input: %w", err)
		}
		return 0, malformedf(testCase, "unexpected end of input reading %s", what)
	}
	tok := r.sc.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, malformedf(testCase, "%s: not an integer: %q", what, tok)
	}
	return v, nil
}
