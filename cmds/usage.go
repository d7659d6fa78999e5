package cmds

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
)

func (p *Executor) PrintUsage() {
	w := os.Stderr
	fmt.Fprintf(w, "usage: %s [command | flag] ...\n", os.Args[0])
	printCommands(w, p.commands, 1)
}

func printCommands(w *os.File, commands map[string]*Command, depth int) {
	// aliases share a *Command, print each only once
	seen := make(map[*Command]bool)
	names := slices.Collect(func(yield func(string) bool) {
		for name, cmd := range commands {
			if seen[cmd] {
				continue
			}
			seen[cmd] = true
			if !yield(name) {
				return
			}
		}
	})
	sort.Strings(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		line := indent + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line += "\n" + indent + "  " + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
