package check

// ExecResult holds the fully drained output of one finished command.
// The zero value is also what command-less items are validated against:
// exit code 0 and empty streams.
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Output returns stdout, falling back to stderr when stdout is empty.
// Toolchains disagree about which stream diagnostics go to.
func (r ExecResult) Output() string {
	if r.Stdout != "" {
		return r.Stdout
	}
	return r.Stderr
}
