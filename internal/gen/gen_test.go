package gen

import (
	"bytes"
	"context"
	"testing"

	"selsort/internal/core"
)

func TestGenerate_FixtureIsSelfConsistent(t *testing.T) {
	var in, want bytes.Buffer
	spec := Spec{Cases: 3, Size: 16, Max: 100}

	if err := Generate(spec, &in, &want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got bytes.Buffer
	runner := &core.Runner{
		Reader: core.NewCaseReader(bytes.NewReader(in.Bytes())),
		Writer: core.NewCaseWriter(&got),
		Verify: true,
	}
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("sorting generated input: %v", err)
	}
	if summary.Cases != spec.Cases {
		t.Fatalf("summary = %+v", summary)
	}

	if !bytes.Equal(got.Bytes(), want.Bytes()) {
		t.Fatalf("sorter output does not match generated expectation:\n got %q\nwant %q", got.Bytes(), want.Bytes())
	}
}

func TestGenerate_ZeroCases(t *testing.T) {
	var in, want bytes.Buffer
	if err := Generate(Spec{Cases: 0, Size: 5, Max: 10}, &in, &want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := in.String(); got != "0\n" {
		t.Fatalf("input = %q", got)
	}
	if want.Len() != 0 {
		t.Fatalf("expected no expected-output lines, got %q", want.String())
	}
}

func TestGenerate_EmptyArrays(t *testing.T) {
	var in, want bytes.Buffer
	if err := Generate(Spec{Cases: 2, Size: 0, Max: 10}, &in, &want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := in.String(); got != "2\n0\n\n0\n\n" {
		t.Fatalf("input = %q", got)
	}
	if got := want.String(); got != "\n\n" {
		t.Fatalf("want stream = %q", got)
	}
}

func TestGenerate_RejectsInvalidSpec(t *testing.T) {
	bad := []Spec{
		{Cases: -1, Size: 1, Max: 10},
		{Cases: 1, Size: -1, Max: 10},
		{Cases: 1, Size: 1, Max: 0},
	}
	for i, spec := range bad {
		var in, want bytes.Buffer
		if err := Generate(spec, &in, &want); err == nil {
			t.Fatalf("spec %d: expected error", i)
		}
	}
}

func TestGenerate_ValuesWithinBound(t *testing.T) {
	var in, want bytes.Buffer
	spec := Spec{Cases: 1, Size: 64, Max: 7}
	if err := Generate(spec, &in, &want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := core.NewCaseReader(bytes.NewReader(in.Bytes()))
	if _, err := r.ReadCount(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tc, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range tc.Values {
		if v < 0 || v >= 7 {
			t.Fatalf("value %d outside [0, 7)", v)
		}
	}
}
