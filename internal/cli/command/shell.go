package command

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/prospyr-go/internal/cli/repl"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:  "shell",
		Usage: "Run commands interactively, reusing connections between them",
		Description: "Each line is a prospyr-cli command line without the program name.\n" +
			"--connection, --email and --token may be given per line; other global\n" +
			"flags apply to the whole shell. \"PREFIX?\" lists matching commands.",
		Action: shellAction,
	}
}

func shellAction(c *cli.Context) error {
	s, err := state(c)
	if err != nil {
		return err
	}

	history := repl.NewHistory(filepath.Join(filepath.Dir(s.configPath), "history"), 0)
	if err := history.Load(); err != nil {
		s.log.Warn("history not loaded", "error", err)
	}

	exec := func(ctx context.Context, args []string) error {
		if len(args) > 0 && args[0] == "shell" {
			return errors.New("already in a shell")
		}
		app := App()
		app.Reader = c.App.Reader
		app.Writer = c.App.Writer
		app.ErrWriter = c.App.ErrWriter
		app.Metadata = map[string]any{stateKey: s}
		return app.RunContext(ctx, append([]string{c.App.Name}, args...))
	}

	r := repl.New(exec, repl.NewCompleter(commandPaths(c.App.Commands)),
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithHistory(history),
	)
	runErr := r.Run(c.Context)

	if err := history.Save(); err != nil {
		s.log.Warn("history not saved", "error", err)
	}
	return runErr
}

// commandPaths lists "name" and "name sub" for every visible command.
func commandPaths(cmds []*cli.Command) []string {
	var paths []string
	for _, cmd := range cmds {
		if cmd.Hidden {
			continue
		}
		paths = append(paths, cmd.Name)
		for _, sub := range cmd.Subcommands {
			if !sub.Hidden {
				paths = append(paths, cmd.Name+" "+sub.Name)
			}
		}
	}
	return paths
}
