package check

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// passValidator resolves successfully and records what it saw.
type passValidator struct {
	msg   string
	calls []ExecResult
}

func (v *passValidator) Validate(res ExecResult) (string, error) {
	v.calls = append(v.calls, res)
	return v.msg, nil
}

// failValidator always rejects.
type failValidator struct {
	calls int
}

func (v *failValidator) Validate(ExecResult) (string, error) {
	v.calls++
	return "", errors.New("something is off")
}

func TestRunAll_AllPass(t *testing.T) {
	exec := &MockExecutor{
		ExecuteFunc: func(argv []string) (ExecResult, error) {
			return ExecResult{Stdout: "out"}, nil
		},
	}
	first := &passValidator{msg: "looking good"}
	second := &passValidator{}

	r := &Runner{Exec: exec}
	err := r.RunAll([]Item{
		{Name: "first", Command: []string{"true"}, Validator: first},
		{Name: "second", Validator: second},
	})
	if err != nil {
		t.Fatalf("RunAll() = %v, want nil", err)
	}
	if len(first.calls) != 1 || len(second.calls) != 1 {
		t.Errorf("validator calls = %d, %d, want 1, 1", len(first.calls), len(second.calls))
	}
}

func TestRunAll_FailFast(t *testing.T) {
	exec := &MockExecutor{
		ExecuteFunc: func(argv []string) (ExecResult, error) {
			return ExecResult{}, nil
		},
	}
	first := &passValidator{}
	second := &failValidator{}
	third := &passValidator{}

	r := &Runner{Exec: exec}
	err := r.RunAll([]Item{
		{Name: "first", Command: []string{"cmd-one"}, Validator: first},
		{Name: "second", Command: []string{"cmd-two"}, Validator: second},
		{Name: "third", Command: []string{"cmd-three"}, Validator: third},
	})

	var failed *FailedError
	if !errors.As(err, &failed) {
		t.Fatalf("RunAll() = %v, want *FailedError", err)
	}
	if failed.Index != 1 || failed.Name != "second" {
		t.Errorf("failure = index %d name %q, want index 1 name %q", failed.Index, failed.Name, "second")
	}
	if failed.Message != "something is off" {
		t.Errorf("Message = %q, want %q", failed.Message, "something is off")
	}

	// The third item must never have started: no command spawned, no
	// validator invoked.
	wantCalls := [][]string{{"cmd-one"}, {"cmd-two"}}
	if !reflect.DeepEqual(exec.Calls, wantCalls) {
		t.Errorf("executed commands = %v, want %v", exec.Calls, wantCalls)
	}
	if len(third.calls) != 0 {
		t.Errorf("third validator ran %d times, want 0", len(third.calls))
	}
}

func TestRunAll_CommandlessItemGetsEmptyResult(t *testing.T) {
	exec := &MockExecutor{
		ExecuteFunc: func(argv []string) (ExecResult, error) {
			t.Fatalf("executor invoked for command-less item: %v", argv)
			return ExecResult{}, nil
		},
	}
	v := &passValidator{}

	r := &Runner{Exec: exec}
	if err := r.RunAll([]Item{{Name: "direct", Validator: v}}); err != nil {
		t.Fatalf("RunAll() = %v, want nil", err)
	}

	want := ExecResult{ExitCode: 0, Stdout: "", Stderr: ""}
	if len(v.calls) != 1 || v.calls[0] != want {
		t.Errorf("validator input = %+v, want %+v", v.calls, want)
	}
}

func TestRunAll_LaunchErrorFailsCheck(t *testing.T) {
	exec := &MockExecutor{
		ExecuteFunc: func(argv []string) (ExecResult, error) {
			return ExecResult{}, fmt.Errorf("failed to run %s: executable file not found", argv[0])
		},
	}
	v := &passValidator{}

	r := &Runner{Exec: exec}
	err := r.RunAll([]Item{{Name: "broken", Command: []string{"no-such-tool"}, Validator: v}})

	var failed *FailedError
	if !errors.As(err, &failed) {
		t.Fatalf("RunAll() = %v, want *FailedError", err)
	}
	if failed.Index != 0 || failed.Name != "broken" {
		t.Errorf("failure = index %d name %q, want index 0 name %q", failed.Index, failed.Name, "broken")
	}
	if len(v.calls) != 0 {
		t.Errorf("validator ran %d times after launch error, want 0", len(v.calls))
	}
}

func TestRunAll_ValidatorResultPassedThrough(t *testing.T) {
	exec := &MockExecutor{
		ExecuteFunc: func(argv []string) (ExecResult, error) {
			return ExecResult{ExitCode: 2, Stdout: "hello\n", Stderr: "warn\n"}, nil
		},
	}
	v := &passValidator{}

	r := &Runner{Exec: exec}
	if err := r.RunAll([]Item{{Name: "capture", Command: []string{"tool"}, Validator: v}}); err != nil {
		t.Fatalf("RunAll() = %v, want nil", err)
	}

	want := ExecResult{ExitCode: 2, Stdout: "hello\n", Stderr: "warn\n"}
	if v.calls[0] != want {
		t.Errorf("validator input = %+v, want %+v", v.calls[0], want)
	}
}

func TestFailedError_Error(t *testing.T) {
	err := &FailedError{Index: 2, Name: "publish dry run", Message: "registry said no"}
	want := `check "publish dry run" failed: registry said no`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
