package cmd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var (
	// ANSI Colors
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
)

// Status lines are colored only when the stream is an interactive terminal.
var (
	stdoutColor = term.IsTerminal(int(os.Stdout.Fd()))
	stderrColor = term.IsTerminal(int(os.Stderr.Fd()))
)

func printSuccess(w io.Writer, msg string) {
	if stdoutColor {
		fmt.Fprintf(w, "%s✔%s %s\n", colorGreen, colorReset, msg)
		return
	}
	fmt.Fprintln(w, msg)
}

func printError(w io.Writer, msg string) {
	if stderrColor {
		fmt.Fprintf(w, "%s✘%s %s%s%s\n", colorRed, colorReset, colorRed, msg, colorReset)
		return
	}
	fmt.Fprintln(w, msg)
}
