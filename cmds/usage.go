package cmds

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printUsage(w, p.commands, 0)
}

func printUsage(w io.Writer, commands map[string]*Command, depth int) {
	// group aliases under the defined name
	seen := make(map[*Command]bool)
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		cmd := commands[name]
		if cmd == nil || seen[cmd] {
			continue
		}
		if slices.Contains(cmd.Aliases, name) {
			continue
		}
		seen[cmd] = true
		line := strings.Repeat("  ", depth) + name
		if len(cmd.Aliases) > 0 {
			line += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		if cmd.Func.IsValid() {
			for i := range cmd.Func.Type().NumIn() {
				line += fmt.Sprintf(" <%v>", cmd.Func.Type().In(i))
			}
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			printUsage(w, cmd.Subs, depth+1)
		}
	}
}
