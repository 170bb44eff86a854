package commands

import (
	"log"
	"strings"
)

// cmd is a registered action, invoked with the whitespace-split
// arguments that followed the command name on the command line.
type cmd func(args []string) error

type Commands struct {
	log      *log.Logger
	commands map[string]cmd
}

func NewCommands(log *log.Logger) *Commands {
	return &Commands{log: log, commands: make(map[string]cmd)}
}

// Exec splits command into a name and its arguments, resolves the name
// to the longest registered name that starts with it (unchanged from the
// teacher's findCommandByLongestPrefix), and runs it. Ambiguity is not
// checked: when several matching names share the longest length, which
// one runs is not defined.
func (c *Commands) Exec(command string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return
	}
	name, args := fields[0], fields[1:]

	if cmd := c.findCommandByLongestPrefix(name); cmd != nil {
		if err := cmd(args); err != nil {
			c.log.Printf("Command %s failed: %v\n", name, err)
		}
	} else {
		c.log.Printf("Command %s not found\n", name)
	}
}

func (c *Commands) findCommandByLongestPrefix(commandPrefix string) cmd {
	longest := -1
	var longestCmd cmd
	for name, cmd := range c.commands {
		if strings.HasPrefix(name, commandPrefix) && len(name) > longest {
			longest = len(name)
			longestCmd = cmd
		}
	}
	return longestCmd
}

func (c *Commands) Register(name string, command cmd) {
	c.commands[name] = command
}
