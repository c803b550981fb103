package check

import (
	"fmt"

	"github.com/vertti/shipcheck/pkg/output"
)

// FailedError describes the first check that failed during a run.
type FailedError struct {
	Index   int    // position of the failing item in the run list
	Name    string // the failing item's name
	Message string // the validator's (or executor's) message
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("check %q failed: %s", e.Name, e.Message)
}

// Runner executes check items in order, stopping at the first failure.
type Runner struct {
	Exec Executor
}

// RunAll runs every item in list order, printing a header before each
// one and an OK line after it passes. The first failure is printed as
// an error line and returned as a *FailedError; items after it never
// start. A nil return means every check passed.
//
// Items without a command are validated against the zero ExecResult.
// The loop is strictly sequential so that check output stays ordered
// and a failing early check keeps later, slower checks from touching
// shared external state.
func (r *Runner) RunAll(items []Item) error {
	for i, item := range items {
		output.Header(item.Name)

		var res ExecResult
		if len(item.Command) > 0 {
			var err error
			res, err = r.Exec.Execute(item.Command)
			if err != nil {
				output.Error(err.Error())
				return &FailedError{Index: i, Name: item.Name, Message: err.Error()}
			}
		}

		msg, err := item.Validator.Validate(res)
		if err != nil {
			output.Error(err.Error())
			return &FailedError{Index: i, Name: item.Name, Message: err.Error()}
		}
		output.OK(item.Name, msg)
	}
	return nil
}
