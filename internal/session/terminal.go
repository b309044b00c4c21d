package session

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal is a line reader and writer for an interactive session.
type Terminal struct {
	LineReader
	io.Writer

	restore func() error
}

// Close restores the previous terminal state.
func (t *Terminal) Close() error {
	if t.restore == nil {
		return nil
	}
	return t.restore()
}

// SetPrompt sets the prompt if the line reader shows one.
func (t *Terminal) SetPrompt(prompt string) {
	if p, ok := t.LineReader.(prompter); ok {
		p.SetPrompt(prompt)
	}
}

// OpenTerminal returns a terminal for the given input and output. If the
// input is a terminal it is switched to raw mode and gets line editing and
// history, otherwise lines are read from the input as is.
func OpenTerminal(in *os.File, out io.Writer) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return &Terminal{
			LineReader: NewScanner(in),
			Writer:     out,
		}, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("setting terminal raw mode: %w", err)
	}

	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	t := term.NewTerminal(rw, "")
	if width, height, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(width, height)
	}

	return &Terminal{
		LineReader: t,
		Writer:     t,
		restore: func() error {
			return term.Restore(fd, state)
		},
	}, nil
}

// Scanner reads lines from a plain reader.
type Scanner struct {
	scanner *bufio.Scanner
}

// NewScanner returns a line reader for the reader.
func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{
		scanner: bufio.NewScanner(reader),
	}
}

// ReadLine returns the next line, io.EOF at the end of the input.
func (s *Scanner) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
