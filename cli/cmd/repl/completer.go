package repl

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// completer fuzzy-matches ':' command names against partial input.
type completer struct {
	commands []string
}

func newCompleter() completer {
	return completer{
		commands: []string{
			"help",
			"banks",
			"load",
			"width",
			"set",
			"unset",
			"hex",
			"fmt",
			"clear",
			"quit",
		},
	}
}

// complete returns the input with the best-matching command substituted
// for the partial command word. Only lines that start with ':' and have
// not yet received an argument are completed.
func (c completer) complete(input string) (string, bool) {
	partial, ok := commandWord(input)
	if !ok {
		return input, false
	}

	matches := fuzzy.Find(partial, c.commands)
	if len(matches) == 0 {
		return input, false
	}

	return ":" + matches[0].Str + " ", true
}

// hint renders the candidate list for the current partial command.
func (c completer) hint(input string) string {
	partial, ok := commandWord(input)
	if !ok || partial == "" {
		return ""
	}

	matches := fuzzy.Find(partial, c.commands)
	if len(matches) == 0 {
		return ""
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		names = append(names, ":"+match.Str)
	}

	return strings.Join(names, "  ")
}

// commandWord extracts the partial command name from input, reporting
// whether input is a completable command position.
func commandWord(input string) (string, bool) {
	if !strings.HasPrefix(input, ":") {
		return "", false
	}

	rest := strings.TrimPrefix(input, ":")
	if strings.ContainsAny(rest, " \t") {
		return "", false
	}

	return rest, true
}
