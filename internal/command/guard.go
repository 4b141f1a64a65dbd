package command

import (
	"errors"

	"go.uber.org/zap"

	"github.com/smileynet/assistant/internal/addressbook"
)

// handler runs one operation against the address book.
type handler func(args []string) (string, error)

// guard wraps h so nothing escapes it: returned errors and panics both come
// back as a failed Reply carrying the normalized message.
func (d *Dispatcher) guard(action string, h handler) func(args []string) Reply {
	return func(args []string) (reply Reply) {
		defer func() {
			if r := recover(); r != nil {
				reply = d.fail(action, &UnexpectedError{Value: r})
			}
		}()

		d.logger.Debug("dispatch", zap.String("action", action), zap.Int("args", len(args)))
		text, err := h(args)
		if err != nil {
			return d.fail(action, err)
		}
		return Reply{Text: text}
	}
}

// fail logs err and converts it to a failed Reply.
func (d *Dispatcher) fail(action string, err error) Reply {
	msg := Normalize(err)
	if msg == MsgValidation || msg == MsgNotFound || msg == MsgFormat {
		d.logger.Info("command rejected", zap.String("action", action), zap.Error(err))
	} else {
		d.logger.Warn("command failed", zap.String("action", action), zap.Error(err))
	}
	return Reply{Text: msg, Failed: true}
}

// Normalize maps an error to the line shown to the user.
func Normalize(err error) string {
	var (
		ve *addressbook.ValidationError
		fe *FormatError
	)
	switch {
	case errors.As(err, &ve), errors.Is(err, addressbook.ErrMissingField):
		return MsgValidation
	case errors.Is(err, ErrNotFound):
		return MsgNotFound
	case errors.As(err, &fe), errors.Is(err, ErrMissingArgument):
		return MsgFormat
	default:
		return "An error occurred: " + err.Error()
	}
}
