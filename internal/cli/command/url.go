package command

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/prospyr-go/internal/connection"
)

// URLCommand returns the url command.
func URLCommand() *cli.Command {
	return &cli.Command{
		Name:      "url",
		Usage:     "Print the absolute API URL for a path",
		ArgsUsage: "PATH",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("url requires exactly one PATH argument", 2)
			}

			s, err := state(c)
			if err != nil {
				return err
			}
			conn, err := s.selected(c)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.App.Writer, resolveTarget(conn, c.Args().First()))
			return err
		},
	}
}

// resolveTarget returns target unchanged when it is an absolute URL and
// otherwise resolves it against the connection's API URL, keeping any
// query string.
func resolveTarget(conn *connection.Connection, target string) string {
	if u, err := url.Parse(target); err == nil && u.IsAbs() {
		return target
	}

	path, query, _ := strings.Cut(target, "?")
	u := conn.BuildAbsoluteURL(path)
	if query != "" {
		u.RawQuery = query
	}
	return u.String()
}
