package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var errorColor = color.New(color.FgRed)

// console reads answers line by line and writes prompts. Menus print to out
// and problems to errOut.
type console struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func newConsole(in io.Reader, out, errOut io.Writer) *console {
	return &console{in: bufio.NewReader(in), out: out, errOut: errOut}
}

// prompt prints label and returns the trimmed reply. io.EOF is returned
// only when the input ended without any text.
func (c *console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; only "yes" or "y" count as yes.
func (c *console) confirm(question string) (bool, error) {
	answer, err := c.prompt(question + " (yes/no): ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "yes" || answer == "y", nil
}

// choose reads a 1-based selection between 1 and count.
func (c *console) choose(label string, count int) (int, error) {
	answer, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, &InputError{Msg: "please enter a number"}
	}
	if n < 1 || n > count {
		return 0, &InputError{Msg: fmt.Sprintf("please choose between 1 and %d", count)}
	}
	return n, nil
}

func (c *console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// fail reports err without leaving the current menu.
func (c *console) fail(context string, err error) {
	errorColor.Fprintf(c.errOut, "Error: %s: %v\n", context, err)
}
