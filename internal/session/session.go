// Package session runs the read-dispatch-print loop over one of several
// front ends: a Bubble Tea TUI, a readline prompt, or plain line I/O.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/smileynet/assistant/internal/command"
)

// ErrUnknownMode indicates a front-end name New does not recognize.
var ErrUnknownMode = errors.New("session: unknown mode")

// Handler turns one input line into a reply.
// Implemented by *command.Dispatcher.
type Handler interface {
	Handle(line string) command.Reply
}

// Session reads lines until an exit-class reply or end of input.
type Session interface {
	Run(ctx context.Context) error
}

// Mode names accepted by New.
const (
	ModeAuto  = "auto"
	ModeTUI   = "tui"
	ModeLine  = "line"
	ModePlain = "plain"
)

// Options configures session creation.
type Options struct {
	In          io.Reader // Input source (default: os.Stdin).
	Out         io.Writer // Output destination (default: os.Stdout).
	Mode        string    // One of the Mode constants; "" means ModeAuto.
	Prompt      string    // Printed before each line.
	HistoryFile string    // Line mode history; empty disables it.
}

// New returns the session for opts.Mode. ModeAuto picks the TUI when both
// ends are terminals and plain line I/O otherwise.
func New(h Handler, opts Options) (Session, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	mode := Resolve(opts.Mode, opts.In, opts.Out)
	switch mode {
	case ModeTUI:
		return &TUISession{handler: h, in: opts.In, out: opts.Out, prompt: opts.Prompt}, nil
	case ModeLine:
		return &LineSession{handler: h, in: opts.In, out: opts.Out, prompt: opts.Prompt, historyFile: opts.HistoryFile}, nil
	case ModePlain:
		return &PlainSession{handler: h, in: opts.In, out: opts.Out, prompt: opts.Prompt}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}
}

// Resolve maps ModeAuto (or "") to a concrete mode for the given ends.
// Other modes are returned unchanged.
func Resolve(mode string, in io.Reader, out io.Writer) string {
	if mode != "" && mode != ModeAuto {
		return mode
	}
	if isTTY(in) && isTTY(out) {
		return ModeTUI
	}
	return ModePlain
}

// isTTY reports whether v is a file connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// respond dispatches line and prints the reply. It reports whether the
// session should end.
func respond(w io.Writer, h Handler, line string) bool {
	reply := h.Handle(line)
	_, _ = fmt.Fprintln(w, reply.Text)
	return reply.Exit
}
