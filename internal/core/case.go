package core

// TestCase is one independent unit of work: an array to sort.
//
// Values is owned exclusively by the case. Nothing outside the pipeline
// aliases it, so sorting in place is safe and no copy is needed on the
// default (unverified) path.
type TestCase struct {
	// Index is the 1-based position of the case in the input stream.
	Index int

	// Values is the array as read, length n >= 0.
	Values []int
}
