package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"selsort/internal/core"
)

const (
	ExitSuccess           = 0
	ExitInputError        = 1
	ExitInvalidInvocation = 2
	ExitIOError           = 3
	ExitInternalError     = 4
)

// StdStream is the conventional "-" pseudo-path selecting stdin or stdout.
const StdStream = "-"

type ReportConfig struct {
	Enabled bool
	Path    string
}

// Invocation is the fully canonicalized, deterministic description of a run.
//
// Determinism goals:
//   - No environment variables are consulted.
//   - Paths are passed through untouched; "-" selects the standard streams.
type Invocation struct {
	InputPath  string
	OutputPath string
	Verify     bool
	Report     ReportConfig
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// StreamError wraps a failure to open, create, or close one of the run's
// files.
type StreamError struct {
	Path string
	Err  error
}

func (e *StreamError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *StreamError) Unwrap() error { return e.Err }

// ParseInvocation parses CLI flags into a canonical Invocation.
func ParseInvocation(args []string) (Invocation, error) {
	fs := pflag.NewFlagSet("selsort", pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	inputPath := fs.StringP("input", "i", StdStream, `Input path, or "-" for stdin.`)
	outputPath := fs.StringP("output", "o", StdStream, `Output path, or "-" for stdout.`)
	verify := fs.Bool("verify", false, "Check each sorted case against its input (order + permutation).")
	reportPath := fs.String("report", "", "Write a canonical JSON run report to this path.")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	if strings.TrimSpace(*inputPath) == "" {
		return Invocation{}, invalidInvocationf("--input must not be empty")
	}
	if strings.TrimSpace(*outputPath) == "" {
		return Invocation{}, invalidInvocationf("--output must not be empty")
	}

	inv := Invocation{
		InputPath:  *inputPath,
		OutputPath: *outputPath,
		Verify:     *verify,
	}

	if strings.TrimSpace(*reportPath) != "" {
		if *reportPath == StdStream {
			return Invocation{}, invalidInvocationf(`--report must be a file path, not %q`, StdStream)
		}
		inv.Report = ReportConfig{Enabled: true, Path: *reportPath}
	}

	return inv, nil
}

// ExitCode maps an error from parsing or execution to a semantic exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	var streamErr *StreamError
	if errors.As(err, &streamErr) {
		return ExitIOError
	}
	if errors.Is(err, core.ErrMalformedInput) {
		return ExitInputError
	}
	return ExitInternalError
}
