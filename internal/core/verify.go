package core

import (
	"errors"
	"fmt"
)

// ErrVerification indicates a sorted result violated a postcondition.
// This is an internal fault, never an input fault.
var ErrVerification = errors.New("verification failed")

// Verifier checks sort postconditions: the result must be non-decreasing
// and a permutation of the original values.
type Verifier struct{}

// Check compares the sorted slice against the original values.
func (Verifier) Check(testCase int, original, sorted []int) error {
	if !IsNonDecreasing(sorted) {
		return fmt.Errorf("%w: test case %d: result not non-decreasing", ErrVerification, testCase)
	}
	if !SameMultiset(original, sorted) {
		return fmt.Errorf("%w: test case %d: result is not a permutation of the input", ErrVerification, testCase)
	}
	return nil
}

// IsNonDecreasing reports whether every adjacent pair satisfies
// s[i] <= s[i+1].
func IsNonDecreasing(s []int) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

// SameMultiset reports whether a and b contain the same values with the
// same multiplicities.
func SameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
