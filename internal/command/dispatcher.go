package command

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/smileynet/assistant/internal/addressbook"
)

// Canonical actions. Every accepted command word maps to one of these.
const (
	ActionExit   = "exit"
	ActionGreet  = "greet"
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionChange = "change"
	ActionLookup = "lookup"
	ActionAll    = "all"
)

var synonyms = map[string]string{
	"close":   ActionExit,
	"exit":    ActionExit,
	"end":     ActionExit,
	"finish":  ActionExit,
	"bye":     ActionExit,
	"hello":   ActionGreet,
	"hi":      ActionGreet,
	"add":     ActionAdd,
	"new":     ActionAdd,
	"create":  ActionAdd,
	"remove":  ActionRemove,
	"delete":  ActionRemove,
	"change":  ActionChange,
	"update":  ActionChange,
	"phone":   ActionLookup,
	"contact": ActionLookup,
	"search":  ActionLookup,
	"all":     ActionAll,
}

// Words returns every accepted command word in sorted order.
func Words() []string {
	words := make([]string, 0, len(synonyms))
	for w := range synonyms {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Resolve returns the canonical action for a command word, or "" if unknown.
// word must already be lower-cased.
func Resolve(word string) string {
	return synonyms[word]
}

// LookupMode selects what the lookup-class commands search by.
type LookupMode string

const (
	LookupByName  LookupMode = "name"
	LookupByPhone LookupMode = "phone"
)

// Dispatcher routes parsed commands to an address book it owns.
// It is not safe for concurrent use.
type Dispatcher struct {
	book     *addressbook.Book
	lookup   LookupMode
	logger   *zap.Logger
	handlers map[string]func(args []string) Reply
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLookup sets the lookup-class contract. The default is LookupByName.
func WithLookup(mode LookupMode) Option {
	return func(d *Dispatcher) {
		d.lookup = mode
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New creates a Dispatcher operating on book.
func New(book *addressbook.Book, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		book:   book,
		lookup: LookupByName,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	lookup := d.searchByName
	if d.lookup == LookupByPhone {
		lookup = d.searchByPhone
	}
	d.handlers = map[string]func([]string) Reply{
		ActionGreet:  d.guard(ActionGreet, d.greet),
		ActionAdd:    d.guard(ActionAdd, d.add),
		ActionRemove: d.guard(ActionRemove, d.remove),
		ActionChange: d.guard(ActionChange, d.change),
		ActionLookup: d.guard(ActionLookup, lookup),
		ActionAll:    d.guard(ActionAll, d.all),
	}
	return d
}

// Book returns the address book the dispatcher operates on.
func (d *Dispatcher) Book() *addressbook.Book {
	return d.book
}

// Handle parses line and dispatches it. It never fails: every error is
// folded into the returned Reply.
func (d *Dispatcher) Handle(line string) Reply {
	cmd, err := Parse(line)
	if err != nil {
		return d.fail("parse", err)
	}
	return d.Dispatch(cmd)
}

// Dispatch runs an already parsed command.
func (d *Dispatcher) Dispatch(cmd Command) Reply {
	action := Resolve(cmd.Name)
	if action == ActionExit {
		return Reply{Text: MsgFarewell, Exit: true}
	}
	h, ok := d.handlers[action]
	if !ok {
		d.logger.Debug("unknown command", zap.String("command", cmd.Name))
		return Reply{Text: MsgInvalidCommand}
	}
	return h(cmd.Args)
}

// arg returns args[i], or ErrMissingArgument when there is no such argument.
func arg(args []string, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%w: position %d", ErrMissingArgument, i)
	}
	return args[i], nil
}

func (d *Dispatcher) greet([]string) (string, error) {
	return MsgGreeting, nil
}

func (d *Dispatcher) add(args []string) (string, error) {
	name, err := arg(args, 0)
	if err != nil {
		return "", err
	}
	if name == "" || len(args) < 2 {
		return "", fmt.Errorf("%w: add needs a name and at least one phone", addressbook.ErrMissingField)
	}
	if err := d.book.AddRecord(name, args[1:]...); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact '%s' added.", name), nil
}

func (d *Dispatcher) remove(args []string) (string, error) {
	name, err := arg(args, 0)
	if err != nil {
		return "", err
	}
	d.book.DeleteRecord(name)
	return fmt.Sprintf("Contact '%s' removed.", name), nil
}

func (d *Dispatcher) change(args []string) (string, error) {
	if len(args) != 3 {
		return "", &FormatError{Command: ActionChange, Reason: "expected name, old phone and new phone"}
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]
	if err := d.book.EditPhoneInRecord(name, oldPhone, newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone '%s' edited to '%s' for contact '%s'.", oldPhone, newPhone, name), nil
}

func (d *Dispatcher) searchByName(args []string) (string, error) {
	name, err := arg(args, 0)
	if err != nil {
		return "", err
	}
	return d.book.SearchRecord(name), nil
}

func (d *Dispatcher) searchByPhone(args []string) (string, error) {
	phone, err := arg(args, 0)
	if err != nil {
		return "", err
	}
	rec, ok := d.book.FindRecordByPhone(phone)
	if !ok {
		return fmt.Sprintf("No contact found for phone '%s'.", phone), nil
	}
	return rec.String(), nil
}

func (d *Dispatcher) all([]string) (string, error) {
	return d.book.String(), nil
}
