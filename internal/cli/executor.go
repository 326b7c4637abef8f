package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"selsort/internal/core"
	"selsort/internal/report"
)

// CLIResult carries the semantic exit code plus the run summary for callers
// that want more than the code (tests, mainly).
type CLIResult struct {
	ExitCode int
	Summary  core.RunSummary
}

// Execute maps a canonical Invocation to a run over real streams.
//
// Responsibilities:
//   - Open input and output (files or the standard streams).
//   - Wire the core Runner, with verification and report recording as asked.
//   - Write the report file after execution, even when a case failed, so the
//     report reflects whatever completed.
//   - Translate error classes to semantic exit codes; contain panics.
func Execute(ctx context.Context, inv Invocation) (res CLIResult, execErr error) {
	res.ExitCode = ExitInternalError
	defer func() {
		if p := recover(); p != nil {
			res.ExitCode = ExitInternalError
			execErr = fmt.Errorf("internal panic: %v", p)
		}
	}()

	in, closeIn, err := openInput(inv.InputPath)
	if err != nil {
		res.ExitCode = ExitCode(err)
		return res, err
	}
	defer closeIn()

	out, closeOut, err := openOutput(inv.OutputPath)
	if err != nil {
		res.ExitCode = ExitCode(err)
		return res, err
	}

	var rec *report.Recorder
	hasher := report.NewOutputHasher()
	sink := io.Writer(out)
	if inv.Report.Enabled {
		rec = report.NewRecorder()
		sink = io.MultiWriter(out, hasher)
	}

	runner := &core.Runner{
		Reader:   core.NewCaseReader(in),
		Writer:   core.NewCaseWriter(sink),
		Verify:   inv.Verify,
		Recorder: rec,
	}

	summary, runErr := runner.Run(ctx)

	if inv.Report.Enabled {
		if err := writeReport(inv.Report.Path, rec, hasher.Digest()); err != nil && runErr == nil {
			runErr = err
		}
	}

	if err := closeOut(); err != nil && runErr == nil {
		runErr = &StreamError{Path: inv.OutputPath, Err: err}
	}

	res.Summary = summary
	res.ExitCode = ExitCode(runErr)
	return res, runErr
}

func openInput(path string) (io.Reader, func(), error) {
	if path == StdStream {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &StreamError{Path: path, Err: err}
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == StdStream {
		// Stdout is not ours to close.
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, &StreamError{Path: path, Err: err}
	}
	return f, f.Close, nil
}

func writeReport(path string, rec *report.Recorder, outputDigest string) error {
	rep := rec.Report(outputDigest)
	canonical, err := rep.CanonicalJSON()
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, canonical, 0o644); err != nil {
		return &StreamError{Path: path, Err: err}
	}
	return nil
}
