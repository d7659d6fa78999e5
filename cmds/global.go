package cmds

import "os"

var GlobalExecutor = NewExecutor()

// Define registers a command on the global executor.
func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args on the global executor, printing usage on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		GlobalExecutor.PrintUsage()
		os.Exit(-1)
	}
}
