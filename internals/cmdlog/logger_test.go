package cmdlog

import (
	"bytes"
	"testing"
)

func TestLoggerInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithWriter(buf)
	l.SetColor(false)

	l.Info("hello")
	l.Indent(2).Info("nested")

	want := "hello\n  nested\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestTaskStep(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithWriter(buf)
	l.SetColor(false)
	l.emojis = false

	task := l.NewTask(2)
	task.Step("📦", "Opening archive")
	task.Step("📦", "Extracting")

	want := "[1 / 2] Opening archive\n[2 / 2] Extracting\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}
