// Package command turns raw input lines into address book operations and
// renders every outcome, failures included, as a single reply line.
package command

import "strings"

// Command is a parsed input line.
type Command struct {
	Name string   // Lower-cased first word.
	Args []string // Remaining whitespace-separated words.
}

// singleArg holds the commands whose remainder must be exactly one word.
var singleArg = map[string]bool{
	"phone":  true,
	"delete": true,
}

// Parse splits line into a command name and its arguments.
//
// A command followed by nothing parses with no arguments. Otherwise "phone"
// and "delete" take exactly one argument and every other command at least
// two. A blank line parses to the zero Command.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, nil
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]
	if len(args) == 0 {
		return Command{Name: name, Args: []string{}}, nil
	}

	if singleArg[name] {
		if len(args) != 1 {
			return Command{Name: name}, &FormatError{Command: name, Reason: "expected exactly one argument"}
		}
	} else if len(args) < 2 {
		return Command{Name: name}, &FormatError{Command: name, Reason: "expected at least two arguments"}
	}

	return Command{Name: name, Args: args}, nil
}
