// Package output formats and prints check progress lines.
package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"
)

// headerWidth is the total width header lines are padded to with '='.
const headerWidth = 40

var (
	green = "\033[32m"
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, reset = "", "", ""
	}
}

// FormatHeader returns the start marker for a check, "== <name> "
// padded to a fixed width with '='.
func FormatHeader(name string) string {
	s := fmt.Sprintf("== %s ", name)
	if pad := headerWidth - len(s); pad > 0 {
		s += strings.Repeat("=", pad)
	}
	return s
}

// FormatOK returns the completion line for a passed check. The optional
// message is appended after ": ".
func FormatOK(name, msg string) string {
	s := fmt.Sprintf("OK ... %s", name)
	if msg != "" {
		s += ": " + msg
	}
	return s
}

// FormatError returns the failure line for a failed check.
func FormatError(msg string) string {
	return fmt.Sprintf("[Error] %s", msg)
}

// Header prints the start marker for a check.
func Header(name string) {
	fmt.Println(FormatHeader(name))
}

// OK prints the completion line for a passed check in green.
func OK(name, msg string) {
	fmt.Printf("%s%s%s\n", green, FormatOK(name, msg), reset)
}

// Error prints the failure line for a failed check in red.
func Error(msg string) {
	fmt.Printf("%s%s%s\n", red, FormatError(msg), reset)
}
