package usage

import (
	"fmt"
	"strings"
)

func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("raven: '%s' is not a raven command. See 'raven --help'.", command)
	if len(suggestions) > 0 {
		var b strings.Builder
		b.WriteString(msg)
		if len(suggestions) == 1 {
			b.WriteString("\n\nThe most similar command is\n")
		} else {
			b.WriteString("\n\nThe most similar commands are\n")
		}
		for _, s := range suggestions {
			b.WriteString("\t")
			b.WriteString(s)
			b.WriteString("\n")
		}
		msg = strings.TrimSuffix(b.String(), "\n")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
