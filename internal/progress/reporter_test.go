package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "rendering sections")
	r.Update(2, "copying assets")
	r.Finish()

	want := "Building page in 2 steps\n[1/2] rendering sections\n[2/2] copying assets\nBuild complete\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestTerminalReporterWithoutStart(t *testing.T) {
	// Update and Finish before Start must not panic.
	r := &TerminalReporter{}
	r.Update(1, "x")
	r.Finish()
}
