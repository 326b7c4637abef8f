// Package core implements the sorting pipeline: reading whitespace-delimited
// test cases, sorting each with selection sort, verifying postconditions,
// and writing one result line per case.
//
// The pipeline is strictly sequential and owns every slice it sorts; there
// is no cross-case state and no aliasing, so sorting in place is safe.
package core
