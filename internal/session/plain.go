package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smileynet/assistant/internal/command"
)

// PlainSession reads newline-separated commands from any reader.
// Blank lines are skipped.
type PlainSession struct {
	handler Handler
	in      io.Reader
	out     io.Writer
	prompt  string
}

// Run prints the welcome banner, then loops until an exit-class command,
// end of input or ctx cancellation.
func (s *PlainSession) Run(ctx context.Context) error {
	_, _ = fmt.Fprintln(s.out, command.MsgWelcome)

	r := bufio.NewReader(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprint(s.out, s.prompt)

		// No line length limit.
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("session: reading input: %w", err)
		}
		atEOF := err != nil

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" && respond(s.out, s.handler, line) {
			return nil
		}
		if atEOF {
			_, _ = fmt.Fprintln(s.out)
			return nil
		}
	}
}
