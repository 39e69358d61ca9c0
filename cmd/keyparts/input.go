package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wbrc/keyparts"
)

// readParts returns the key parts given on the command line, read from
// stdin when the only argument is "-" or there are none, or prompted for
// when stdin is a terminal. Whitespace inside a part is dropped so grouped
// output can be pasted back in.
func (a *app) readParts(args []string) ([]string, error) {
	var parts []string
	var err error

	switch {
	case len(args) == 1 && args[0] == "-":
		parts, err = scanParts(a.stdin)
	case len(args) == 0 && isTerminal(a.stdin):
		parts, err = a.promptParts(a.stdin.(*os.File))
	case len(args) == 0:
		parts, err = scanParts(a.stdin)
	default:
		for _, arg := range args {
			parts = append(parts, normalize(arg))
		}
	}
	if err != nil {
		return nil, err
	}

	if len(parts) == 0 {
		return nil, keyparts.ErrEmptyInput
	}

	return parts, nil
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// one part per line, blank lines are skipped
func scanParts(r io.Reader) ([]string, error) {
	var parts []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if p := normalize(s.Text()); p != "" {
			parts = append(parts, p)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read key parts: %w", err)
	}

	return parts, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// promptParts reads parts from the terminal without echo until an empty
// line is entered.
func (a *app) promptParts(f *os.File) ([]string, error) {
	var parts []string
	for {
		fmt.Fprintf(a.stderr, "Key part %d (empty to finish): ", len(parts)+1)
		line, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stderr)
		if err != nil {
			return nil, fmt.Errorf("failed to read key part: %w", err)
		}

		p := normalize(string(line))
		if p == "" {
			return parts, nil
		}
		parts = append(parts, p)
	}
}
