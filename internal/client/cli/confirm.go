package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// promptConfirmer asks y/N questions on the REPL input. Without a terminal
// every prompt is declined unless assumeYes is set.
type promptConfirmer struct {
	reader      *bufio.Reader
	w           io.Writer
	assumeYes   bool
	interactive bool
}

func (c *promptConfirmer) Confirm(_ context.Context, prompt string) bool {
	if c.assumeYes {
		return true
	}
	if !c.interactive {
		fmt.Fprintln(c.w, prompt, "(declined: not a terminal, use -y)")
		return false
	}

	fmt.Fprintf(c.w, "%s [y/N] ", prompt)
	answer, err := readLine(c.reader)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
