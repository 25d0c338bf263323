package cmd

import (
	"flag"
	"fmt"
	"io"
)

const (
	CommandServe   = "serve"
	CommandMigrate = "migrate"
	CommandSeed    = "seed"
)

// Command is a parsed command line.
type Command struct {
	Name    string
	Args    []string
	EnvFile string
}

// ParseCommand reads global flags followed by an optional subcommand, which
// defaults to serve.
func ParseCommand(args []string, errOut io.Writer) (Command, error) {
	fs := flag.NewFlagSet("fyyur", flag.ContinueOnError)
	fs.SetOutput(errOut)
	envFile := fs.String("env", ".env", "path of the .env file to load")
	fs.Usage = func() {
		fmt.Fprintln(errOut, "usage: fyyur [-env file] [serve | migrate up|down | seed]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return Command{}, err
	}

	cmd := Command{Name: CommandServe, EnvFile: *envFile}
	rest := fs.Args()
	if len(rest) > 0 {
		cmd.Name, cmd.Args = rest[0], rest[1:]
	}

	switch cmd.Name {
	case CommandServe, CommandSeed:
		if len(cmd.Args) > 0 {
			return Command{}, fmt.Errorf("%s takes no arguments, got %q", cmd.Name, cmd.Args)
		}
	case CommandMigrate:
		if len(cmd.Args) != 1 {
			return Command{}, fmt.Errorf("migrate needs exactly one direction: up or down")
		}
	default:
		return Command{}, fmt.Errorf("unknown command %q", cmd.Name)
	}
	return cmd, nil
}
