package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiPink  = "\x1b[35m"
)

// UseColor reports whether diagnostics written to f may carry ANSI colour.
func UseColor(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Fprint writes one diagnostic per line.
func Fprint(w io.Writer, errs []*DiagnosticError, color bool) {
	for _, err := range errs {
		label := "error"
		if err.IsInternal() {
			label = "internal error"
		}
		if !color {
			fmt.Fprintf(w, "%s: %s [%s]: %s\n", err.Location(), label, err.Code, err.Message)
			continue
		}
		labelColor := ansiRed
		if err.IsInternal() {
			labelColor = ansiPink
		}
		fmt.Fprintf(w, "%s%s:%s %s%s [%s]:%s %s\n",
			ansiBold, err.Location(), ansiReset,
			labelColor+ansiBold, label, err.Code, ansiReset,
			err.Message)
	}
}
