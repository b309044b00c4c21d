// Package session implements the interactive conversion session.
//
// Every entered line is converted right away: a Game Genie code is decoded,
// an address and value with optional compare is encoded. Input that is not a
// valid code or patch yet is ignored without a message, so that codes can be
// typed in and corrected step by step. Lines starting with a colon are
// session commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogenie/genie"
	"github.com/retroenv/retrogenie/internal/converter"
	"github.com/retroenv/retrogenie/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

const helpText = `Enter a Game Genie code to decode it or address:value[:compare] to encode.
Commands:
  :system <name>  switch the system (nes, snes, genesis, gb), empty for auto-detect
  :reset          clear the last result
  :last           show the last result
  :help           show this help
  :quit           end the session`

// LineReader reads input lines.
type LineReader interface {
	ReadLine() (string, error)
}

// prompter is implemented by line readers that show a prompt.
type prompter interface {
	SetPrompt(prompt string)
}

// Session is an interactive conversion session.
type Session struct {
	logger    *log.Logger
	converter *converter.Converter
	writer    *writer.Writer
	reader    LineReader
}

// New creates a new session that reads lines from the reader and writes
// results using the writer.
func New(logger *log.Logger, conv *converter.Converter, reader LineReader, w *writer.Writer) *Session {
	s := &Session{
		logger:    logger,
		converter: conv,
		writer:    w,
		reader:    reader,
	}
	s.updatePrompt()
	return s
}

// Run processes input lines until the input ends, the quit command is
// entered or the context is cancelled.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			quit, err := s.command(line[1:])
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			continue
		}

		if err := s.convert(line); err != nil {
			return err
		}
	}
}

func (s *Session) convert(line string) error {
	result, err := s.converter.Convert(line)
	if err != nil {
		if errors.Is(err, genie.ErrInvalidCode) || errors.Is(err, genie.ErrInvalidField) {
			s.logger.Debug("Ignoring incomplete input", log.String("input", line), log.Err(err))
			return nil
		}
		return s.writer.WriteLine("error: %s", err)
	}
	return s.writer.WriteResult(result)
}

func (s *Session) command(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "q", "quit", "exit":
		return true, nil

	case "s", "system":
		var name string
		if len(fields) > 1 {
			name = fields[1]
		}
		return false, s.switchSystem(name)

	case "r", "reset":
		s.writer.Reset()
		return false, nil

	case "l", "last":
		last := s.writer.Last()
		if last == "" {
			return false, s.writer.WriteLine("no result")
		}
		return false, s.writer.WriteLine("%s", last)

	case "h", "help", "?":
		return false, s.writer.WriteLine("%s", helpText)

	default:
		return false, s.writer.WriteLine("unknown command '%s', enter :help for a list of commands", fields[0])
	}
}

// switchSystem selects a new system, the last result is cleared as it
// belongs to the previous system.
func (s *Session) switchSystem(name string) error {
	if name != "" {
		system, err := genie.ParseSystem(name)
		if err != nil {
			return s.writer.WriteLine("unknown system '%s'", name)
		}
		name = system.String()
	}

	conv, err := s.converter.WithSystem(name)
	if err != nil {
		return s.writer.WriteLine("error: %s", err)
	}
	s.converter = conv
	s.writer.Reset()
	s.updatePrompt()

	if name == "" {
		return s.writer.WriteLine("system: auto-detect")
	}
	return s.writer.WriteLine("system: %s", name)
}

func (s *Session) updatePrompt() {
	p, ok := s.reader.(prompter)
	if !ok {
		return
	}
	system := s.converter.System()
	if system == "" {
		system = "genie"
	}
	p.SetPrompt(system + "> ")
}
