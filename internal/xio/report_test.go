package xio

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdoutReporter_Choices(t *testing.T) {
	var buf bytes.Buffer
	r := StdoutReporter(&buf)
	r.Choices(12)
	if got := buf.String(); got != "CHOICES 12\n" {
		t.Errorf("output = %q, want %q", got, "CHOICES 12\n")
	}
}

func TestStdoutReporter_Accepted(t *testing.T) {
	var buf bytes.Buffer
	r := StdoutReporter(&buf)
	r.Accepted()
	if got := buf.String(); got != "SOLUTION FOUND\n" {
		t.Errorf("output = %q, want %q", got, "SOLUTION FOUND\n")
	}
}

func TestStdoutReporter_TraceBareBlackCount(t *testing.T) {
	var buf bytes.Buffer
	r := StdoutReporter(&buf)
	r.Trace(1, 2, 3, 0, 0, []string{"C A T"})
	want := "CELL 1 2\nBLACK SQUARES 3\nC A T\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestStdoutReporter_TraceForcedFutureOnly(t *testing.T) {
	var buf bytes.Buffer
	r := StdoutReporter(&buf)
	r.Trace(0, 0, 2, 5, 0, nil)
	want := "CELL 0 0\nBLACK SQUARES 2+5\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestStdoutReporter_TraceForcedFutureAndSymExcess(t *testing.T) {
	var buf bytes.Buffer
	r := StdoutReporter(&buf)
	r.Trace(0, 0, 1, 4, 2, nil)
	want := "CELL 0 0\nBLACK SQUARES 1+4/2\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestStdoutReporter_TraceSymExcessWithoutForcedFuture(t *testing.T) {
	var buf bytes.Buffer
	r := StdoutReporter(&buf)
	r.Trace(0, 0, 0, 0, 3, nil)
	want := "CELL 0 0\nBLACK SQUARES 0+0/3\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewRunID_ReturnsParsableUUID(t *testing.T) {
	id := NewRunID()
	if len(id) != 36 || strings.Count(id, "-") != 4 {
		t.Errorf("NewRunID = %q, want a canonical 36-char UUID", id)
	}
}
