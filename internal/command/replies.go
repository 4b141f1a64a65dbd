package command

// Fixed reply lines.
const (
	MsgWelcome        = "Welcome to the assistant bot!"
	MsgGreeting       = "How can I help you?"
	MsgFarewell       = "Good bye!"
	MsgInvalidCommand = "Invalid command."

	MsgValidation = "Give me name and phone please."
	MsgNotFound   = "Contact not found."
	MsgFormat     = "Invalid command format. Please check the input."
)

// Reply is the rendered outcome of one input line.
type Reply struct {
	Text   string
	Exit   bool // The session should end after printing Text.
	Failed bool // Text is a normalized error message.
}
