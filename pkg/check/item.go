// Package check defines the release-gate check model and the sequential
// runner that drives it.
package check

// Validator decides pass/fail for one check given the result of its
// command. On success it may return a short annotation that is shown
// next to the check's name; on failure the returned error carries the
// message shown to the user.
//
// Implementations:
//   - upgradecheck.Validator: toolchain upgrade availability
//   - tagcheck.Validator: manifest version vs latest git tag
//   - publishcheck.Validator: registry publish dry run
type Validator interface {
	Validate(res ExecResult) (string, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(res ExecResult) (string, error)

func (f ValidatorFunc) Validate(res ExecResult) (string, error) {
	return f(res)
}

// Item is one named unit of pre-publish validation. Items are plain
// values: construct once, reuse across runs.
type Item struct {
	Name      string    // display label, e.g. "deno version"
	Command   []string  // program plus arguments; empty means validate directly
	Validator Validator // decides the outcome
}
