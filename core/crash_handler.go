package core

import (
	"fmt"
	"io"
	"runtime/debug"
)

// PanicError carries a recovered panic and the stack where it happened
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recover turns a panic in the calling goroutine into *errp
// Use as: defer core.Recover(&err)
func Recover(errp *error) {
	if r := recover(); r != nil {
		*errp = &PanicError{Value: r, Stack: debug.Stack()}
	}
}

// HandleCrash restores the terminal through reset, then prints the value and stack trace to w
// Uses \r\n so the output stays aligned if the terminal is still in raw mode
func HandleCrash(r any, reset func(), w io.Writer) {
	if r == nil {
		return
	}
	if reset != nil {
		reset()
	}

	stack := debug.Stack()
	if pe, ok := r.(*PanicError); ok {
		r, stack = pe.Value, pe.Stack
	}

	fmt.Fprintf(w, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}
