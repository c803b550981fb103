package check

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// Executor abstracts command execution for testability.
type Executor interface {
	// Execute runs argv[0] with the remaining elements as arguments,
	// waits for it to exit, and returns its exit code and captured
	// output. A non-zero exit is reported through ExecResult, not as
	// an error; the error return is reserved for commands that could
	// not be started at all.
	Execute(argv []string) (ExecResult, error)
}

// RealExecutor implements Executor using actual OS commands.
type RealExecutor struct{}

// Execute runs the command and drains both streams before returning.
func (e *RealExecutor) Execute(argv []string) (ExecResult, error) {
	if len(argv) == 0 {
		return ExecResult{}, errors.New("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	res := ExecResult{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return ExecResult{}, fmt.Errorf("failed to run %s: %w", argv[0], err)
	}
	return res, nil
}

// MockExecutor is a test double for Executor. It records every argv it
// receives so tests can assert which commands ran.
type MockExecutor struct {
	ExecuteFunc func(argv []string) (ExecResult, error)
	Calls       [][]string
}

// Execute records the call and delegates to the mock function.
func (m *MockExecutor) Execute(argv []string) (ExecResult, error) {
	m.Calls = append(m.Calls, argv)
	return m.ExecuteFunc(argv)
}
