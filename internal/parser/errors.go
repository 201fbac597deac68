package parser

import (
	"fmt"
	"strings"
)

// Usage lists every command of the battle language.
var Usage = map[string]string{
	"play":   "play <card> [to: <enemy>]",
	"end":    "end [turn]",
	"status": "status",
	"help":   "help [command]",
}

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	cmd := strings.Fields(strings.ToLower(input))[0]
	if usage, ok := Usage[cmd]; ok {
		return fmt.Errorf("The command %s must be: %s", cmd, usage)
	}
	return fmt.Errorf("I wasn't able to understand your command")
}
