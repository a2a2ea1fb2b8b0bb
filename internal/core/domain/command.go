package domain

import "strings"

// Command is a single external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env overrides variables of the inherited process environment.
	Env map[string]string
}

// String renders the command line for logs and error metadata.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// CommandResult is the captured outcome of a successful Command.
type CommandResult struct {
	Stdout   string
	ExitCode int
}
