package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"selsort/internal/gen"
)

// selsortgen writes a well-formed input fixture plus the exact output
// selsort must emit for it.
func main() {
	var spec gen.Spec
	var inName, wantName string

	pflag.IntVarP(&spec.Cases, "cases", "c", 1, "number of test cases")
	pflag.IntVarP(&spec.Size, "size", "s", 1000, "length of each array")
	pflag.Int64VarP(&spec.Max, "max", "m", 1<<31, "exclusive upper bound for generated values")
	pflag.StringVarP(&inName, "out-in", "i", "input.txt", "filename for the generated input")
	pflag.StringVarP(&wantName, "out-want", "w", "want.txt", "filename for the expected output")
	pflag.Parse()

	in, err := os.Create(inName)
	if err != nil {
		fatal(err)
	}
	defer in.Close()

	want, err := os.Create(wantName)
	if err != nil {
		fatal(err)
	}
	defer want.Close()

	if err := gen.Generate(spec, in, want); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
