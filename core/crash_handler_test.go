package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func panicky() (err error) {
	defer Recover(&err)
	panic("boom")
}

func TestRecover_ConvertsPanic(t *testing.T) {
	err := panicky()
	var pe *PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *PanicError", err)
	}
	if pe.Value != "boom" || len(pe.Stack) == 0 {
		t.Errorf("PanicError = %+v", pe)
	}
	if err.Error() != "panic: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestRecover_NoPanicKeepsError(t *testing.T) {
	sentinel := errors.New("kept")
	fn := func() (err error) {
		defer Recover(&err)
		return sentinel
	}
	if err := fn(); err != sentinel {
		t.Errorf("err = %v", err)
	}
}

func TestHandleCrash(t *testing.T) {
	var out bytes.Buffer
	reset := false
	HandleCrash(&PanicError{Value: "frame", Stack: []byte("stack-here")}, func() { reset = true }, &out)

	if !reset {
		t.Error("terminal not reset")
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: frame") || !strings.Contains(out.String(), "stack-here") {
		t.Errorf("output = %q", out.String())
	}
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	var out bytes.Buffer
	HandleCrash(nil, func() { t.Error("reset called") }, &out)
	if out.Len() != 0 {
		t.Errorf("wrote %q", out.String())
	}
}
