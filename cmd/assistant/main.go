package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/smileynet/assistant"
	"github.com/smileynet/assistant/internal/addressbook"
	"github.com/smileynet/assistant/internal/command"
	"github.com/smileynet/assistant/internal/config"
	"github.com/smileynet/assistant/internal/logging"
	"github.com/smileynet/assistant/internal/session"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for assistant.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Chat    ChatCmd          `cmd:"" default:"withargs" help:"Start an interactive session (default)."`
	Init    InitCmd          `cmd:"" help:"Write a starter config file."`
}

// ChatCmd starts an interactive contact-manager session.
// Flags left unset keep the value from the config layers.
type ChatCmd struct {
	Config      string `help:"Config file layered over user and project config." type:"path"`
	Mode        string `help:"Front end: auto, tui, line or plain."`
	Lookup      string `help:"What phone/contact/search look up by: name or phone."`
	StrictEdits bool   `help:"Validate the new number on change/update." negatable:""`
	LogFile     string `help:"Write a JSON debug log to this file." type:"path"`
	LogLevel    string `help:"Log level: debug, info, warn or error."`
}

// errSetup marks failures that happen before the session starts.
var errSetup = errors.New("setup failed")

// loadConfig loads layered config from user, project and extra paths with env overrides.
func loadConfig(extra string) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/assistant/config.yaml"),
		".assistant.yaml",
		extra,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// flagsSet returns the names of the flags given on the command line.
func flagsSet(kctx *kong.Context) map[string]bool {
	set := make(map[string]bool)
	for _, p := range kctx.Path {
		if p.Flag != nil {
			set[p.Flag.Name] = true
		}
	}
	return set
}

// applyFlags overrides cfg with the flags that were set. Booleans are
// applied only when named in set, so --no-strict-edits can turn a
// configured true back off.
func (c *ChatCmd) applyFlags(cfg *config.Config, set map[string]bool) {
	if c.Mode != "" {
		cfg.Session.Mode = c.Mode
	}
	if c.Lookup != "" {
		cfg.Book.Lookup = c.Lookup
	}
	if set["strict-edits"] {
		cfg.Book.StrictEdits = c.StrictEdits
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
}

// Run executes the chat command.
func (c *ChatCmd) Run(kctx *kong.Context) error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return fmt.Errorf("chat: %w: %w", errSetup, err)
	}

	// Apply CLI flag overrides.
	c.applyFlags(cfg, flagsSet(kctx))

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("chat: %w: %w", errSetup, err)
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("chat: %w: %w", errSetup, err)
	}
	defer func() { _ = closeLog() }()

	return c.run(context.Background(), os.Stdin, os.Stdout, cfg, logger)
}

// run builds the address book, dispatcher and session, enabling testable wiring.
func (c *ChatCmd) run(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	d := command.New(addressbook.New(addressbook.WithStrictEdits(cfg.Book.StrictEdits)),
		command.WithLookup(command.LookupMode(cfg.Book.Lookup)),
		command.WithLogger(logger),
	)

	s, err := session.New(d, session.Options{
		In:          in,
		Out:         out,
		Mode:        cfg.Session.Mode,
		Prompt:      cfg.Session.Prompt,
		HistoryFile: cfg.Session.HistoryFile,
	})
	if err != nil {
		return fmt.Errorf("chat: %w: %w", errSetup, err)
	}

	logger.Info("session started",
		zap.String("mode", session.Resolve(cfg.Session.Mode, in, out)),
		zap.String("lookup", cfg.Book.Lookup),
		zap.Bool("strict_edits", cfg.Book.StrictEdits),
	)
	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("chat: %w", err)
	}
	logger.Info("session ended", zap.Int("contacts", d.Book().Len()))
	return nil
}

// InitCmd writes the starter config. A config.yaml under
// ~/.config/assistant/templates replaces the built-in one.
type InitCmd struct {
	Output string `help:"Where to write the config." default:".assistant.yaml" type:"path"`
	Force  bool   `help:"Overwrite an existing file."`
}

// Run executes the init command.
func (c *InitCmd) Run() error {
	templates := assistant.OverlayFS(os.ExpandEnv("$HOME/.config/assistant/templates"), assistant.Templates)
	return c.run(os.Stdout, templates)
}

// run copies the config template to Output.
func (c *InitCmd) run(w io.Writer, templates fs.FS) error {
	data, err := fs.ReadFile(templates, assistant.ConfigTemplate)
	if err != nil {
		return fmt.Errorf("init: reading template: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if c.Force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(c.Output, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("init: %s already exists (use --force to overwrite)", c.Output)
		}
		return fmt.Errorf("init: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("init: writing %s: %w", c.Output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("init: closing %s: %w", c.Output, err)
	}

	fmt.Fprintf(w, "Wrote %s\n", c.Output)
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitSession = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, errSetup) {
		return exitSetup
	}
	return exitSession
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Description("An interactive contact manager."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
