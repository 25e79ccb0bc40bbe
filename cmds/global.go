package cmds

import (
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

// ExecuteArgs executes the process arguments.
func ExecuteArgs() error {
	return Execute(os.Args[1:])
}
