package msg

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Out and ErrOut are the sinks for all user-facing output. Tests swap them
// to capture advisories.
var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

func Log(format string, a ...any) {
	fmt.Fprint(Out, color.BlueString("[fargo]"))
	fmt.Fprint(Out, " ")
	fmt.Fprintf(Out, format, a...)
	fmt.Fprint(Out, "\n")
}

func Ok(format string, a ...any) {
	fmt.Fprint(Out, color.GreenString("[OK]"))
	fmt.Fprint(Out, " ")
	fmt.Fprintf(Out, format, a...)
	fmt.Fprint(Out, "\n")
}

func Warn(format string, a ...any) {
	fmt.Fprint(Out, color.YellowString("[WARN]"))
	fmt.Fprint(Out, " ")
	fmt.Fprintf(Out, format, a...)
	fmt.Fprint(Out, "\n")
}

func Error(format string, a ...any) {
	fmt.Fprint(ErrOut, color.RedString("[ERROR]"))
	fmt.Fprint(ErrOut, " ")
	fmt.Fprintf(ErrOut, format, a...)
	fmt.Fprint(ErrOut, "\n")
}

// Fatal prints an error and exits. Only the cmd boundary may call this;
// internal packages return errors instead.
func Fatal(format string, a ...any) {
	Error(format, a...)
	os.Exit(1)
}

// IndentWriter prefixes every line written through it. Used to relay
// collaborator stdout/stderr in verbose mode.
type IndentWriter struct {
	Indent    string
	W         io.Writer
	didIndent bool
}

func (w *IndentWriter) Write(p []byte) (n int, err error) {
	for _, c := range p {
		if !w.didIndent {
			w.W.Write([]byte(w.Indent))
			w.didIndent = true
		}
		w.W.Write([]byte{c})
		if c == '\n' || c == '\r' {
			w.didIndent = false
		}
	}
	return len(p), nil
}
