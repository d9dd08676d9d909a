package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/prospyr-go/internal/cli/output"
	"github.com/yndnr/prospyr-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			s, err := state(c)
			if err != nil {
				return err
			}
			if s.format == output.FormatTable {
				_, err := fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, buildinfo.String())
				return err
			}
			return s.print(c, buildinfo.Get())
		},
	}
}
