package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jwalton/gchalk"
)

// Logger loggs pretty stuff to the console
type Logger struct {
	out       io.Writer
	emojis    bool
	color     bool
	indention int
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Fprintln(l.out, strings.Repeat(" ", l.indention)+a)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

func (l *Logger) paint(style func(...string) string, s string) string {
	if !l.color {
		return s
	}
	return style(s)
}

// Headline prints a cyan bold line
func (l *Logger) Headline(s string) {
	fmt.Fprintln(l.out, l.paint(gchalk.Bold, l.paint(gchalk.Cyan, s)))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Log prints a gray line
func (l *Logger) Log(s string) {
	fmt.Fprintln(l.out, l.paint(gchalk.Gray, s))
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	fmt.Fprintln(l.out, l.sprintEmoji("⚠️ ")+l.paint(gchalk.Bold, l.paint(gchalk.Yellow, s)))
}

// Indent returns a copy of the logger that indents "normal" lines by n spaces
func (l *Logger) Indent(n int) *Logger {
	logger := *l
	logger.indention += n
	return &logger
}

// SetColor toggles colored output
func (l *Logger) SetColor(enabled bool) {
	l.color = enabled
}

// New returns a new Logger that writes to stdout
func New() *Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter returns a new Logger that writes to out
func NewWithWriter(out io.Writer) *Logger {
	emojis := runtime.GOOS != "windows"
	colorToggle := true

	// disable color for CI
	if os.Getenv("CI") != "" {
		emojis = false
		colorToggle = false
	}
	return &Logger{out: out, emojis: emojis, color: colorToggle}
}

// NewTask returns a new Task logger
func (l *Logger) NewTask(end int) *Task {
	logger := *l
	return &Task{&logger, 0, end}
}

// Task logs but with progress
type Task struct {
	*Logger
	current int
	end     int
}

// Step prints progress
func (l *Task) Step(e string, s string) {
	l.current++
	text := fmt.Sprintf(
		"[%d / %d] %s%s",
		l.current,
		l.end,
		l.sprintEmoji(e),
		s,
	)

	// we don't use l.println here, because step headlines should have no indentation
	fmt.Fprintln(l.out, l.paint(gchalk.Cyan, text))
}
