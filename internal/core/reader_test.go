package core

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCaseReader_ReadsWellFormedStream(t *testing.T) {
	r := NewCaseReader(strings.NewReader("2\n3\n3 3 3\n4\n9 1 8 2\n"))

	count, err := r.ReadCount()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	tc1, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tc1.Index != 1 || !reflect.DeepEqual(tc1.Values, []int{3, 3, 3}) {
		t.Fatalf("case 1 = %+v", tc1)
	}

	tc2, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tc2.Index != 2 || !reflect.DeepEqual(tc2.Values, []int{9, 1, 8, 2}) {
		t.Fatalf("case 2 = %+v", tc2)
	}
}

func TestCaseReader_LineStructureIsNotSignificant(t *testing.T) {
	// Same stream as above, but with tokens spread arbitrarily.
	r := NewCaseReader(strings.NewReader("1 3 3\t3\n\n  3"))

	if _, err := r.ReadCount(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(tc.Values, []int{3, 3, 3}) {
		t.Fatalf("values = %v", tc.Values)
	}
}

func TestCaseReader_EmptyCase(t *testing.T) {
	r := NewCaseReader(strings.NewReader("1\n0\n"))
	if _, err := r.ReadCount(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tc.Values) != 0 {
		t.Fatalf("expected empty case, got %v", tc.Values)
	}
}

func TestCaseReader_TruncatedCaseReportsIndex(t *testing.T) {
	r := NewCaseReader(strings.NewReader("2\n3\n1 2 3\n4\n9 1\n"))
	if _, err := r.ReadCount(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("unexpected error on case 1: %v", err)
	}

	_, err := r.Next()
	if err == nil {
		t.Fatalf("expected error on truncated case 2")
	}
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	var inErr *InputError
	if !errors.As(err, &inErr) || inErr.Case != 2 {
		t.Fatalf("expected InputError for case 2, got %v", err)
	}
	if !strings.Contains(err.Error(), "malformed input at test case 2") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCaseReader_NonNumericTokenIsMalformed(t *testing.T) {
	r := NewCaseReader(strings.NewReader("1\n2\n5 x\n"))
	if _, err := r.ReadCount(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := r.Next()
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if !strings.Contains(err.Error(), `"x"`) {
		t.Fatalf("expected offending token in message, got %q", err.Error())
	}
}

func TestCaseReader_NegativeLengthIsMalformed(t *testing.T) {
	r := NewCaseReader(strings.NewReader("1\n-3\n"))
	if _, err := r.ReadCount(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := r.Next()
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestCaseReader_MissingCountIsMalformed(t *testing.T) {
	r := NewCaseReader(strings.NewReader(""))
	_, err := r.ReadCount()
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	var inErr *InputError
	if !errors.As(err, &inErr) || inErr.Case != 0 {
		t.Fatalf("expected pre-case InputError, got %v", err)
	}
	if strings.Contains(err.Error(), "test case 0") {
		t.Fatalf("pre-case error must not name a case index: %q", err.Error())
	}
}

func TestCaseReader_NegativeCountIsMalformed(t *testing.T) {
	r := NewCaseReader(strings.NewReader("-1\n"))
	_, err := r.ReadCount()
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}
