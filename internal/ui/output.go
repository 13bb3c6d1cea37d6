package ui

import (
	"fmt"
	"io"
)

// OK prints a success line.
func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Success, current.SymOK+" "+msg))
}

// Fail prints a failure line; callers pass stderr.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Error, current.SymFail+" "+msg))
}

// Hint prints a muted follow-up line.
func Hint(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Muted, msg))
}
