package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/smileynet/assistant/internal/command"
)

// LineSession is an interactive prompt with history and tab completion of
// command words.
type LineSession struct {
	handler     Handler
	in          io.Reader
	out         io.Writer
	prompt      string
	historyFile string
}

// Run prints the welcome banner, then loops until an exit-class command,
// end of input or ctx cancellation. Ctrl+C discards the current line.
func (s *LineSession) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt,
		HistoryFile:     s.historyFile,
		AutoComplete:    newCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           io.NopCloser(s.in),
		Stdout:          s.out,
	})
	if err != nil {
		return fmt.Errorf("session: initializing prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(rl.Stdout(), command.MsgWelcome)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("session: reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if respond(rl.Stdout(), s.handler, line) {
			return nil
		}
	}
}

// newCompleter completes the first word against every accepted command word.
func newCompleter() *readline.PrefixCompleter {
	words := command.Words()
	items := make([]readline.PrefixCompleterInterface, len(words))
	for i, w := range words {
		items[i] = readline.PcItem(w)
	}
	return readline.NewPrefixCompleter(items...)
}
