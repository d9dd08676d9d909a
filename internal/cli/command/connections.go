package command

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/prospyr-go/internal/cli/output"
	"github.com/yndnr/prospyr-go/internal/core/domain"
)

// ConnectionsCommand returns the connections subcommand group.
func ConnectionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "connections",
		Aliases: []string{"conn"},
		Usage:   "Inspect configured connections",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List registered connections",
				Action: connectionsList,
			},
			{
				Name:   "validate",
				Usage:  "Validate every configured connection",
				Action: connectionsValidate,
			},
		},
	}
}

type connectionRow struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	APIURL  string `json:"api_url" yaml:"api_url"`
}

func connectionsList(c *cli.Context) error {
	s, err := state(c)
	if err != nil {
		return err
	}

	if _, err := s.registry.ConnectProfiles(s.cfg.Connections); err != nil {
		s.log.Warn("some connections could not be registered", "error", err)
	}

	rows := make([]connectionRow, 0, s.registry.Len())
	for _, name := range s.registry.Names() {
		conn, err := s.registry.Get(name)
		if err != nil {
			return err
		}
		rows = append(rows, connectionRow{
			Name:    name,
			Email:   conn.Email(),
			BaseURL: conn.BaseURL().String(),
			APIURL:  conn.APIURL().String(),
		})
	}
	return s.print(c, rows)
}

type validationRow struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Code   string `json:"code,omitempty" yaml:"code,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func connectionsValidate(c *cli.Context) error {
	s, err := state(c)
	if err != nil {
		return err
	}

	names := s.cfg.ProfileNames()
	rows := make([]validationRow, 0, len(names))
	invalid := 0
	for _, name := range names {
		row := validationRow{Name: name, Status: "ok"}
		if err := s.cfg.Connections[name].Validate(); err != nil {
			row.Status = "invalid"
			row.Code = domain.GetErrorCode(err)
			row.Error = err.Error()
			invalid++
		}
		rows = append(rows, row)
	}

	if s.format == output.FormatTable {
		for i := range rows {
			rows[i].Status = colorStatus(rows[i].Status)
		}
	}
	if err := s.print(c, rows); err != nil {
		return err
	}
	if invalid > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d connection(s) invalid", invalid, len(names)), 1)
	}
	return nil
}

// colorStatus highlights a validation status for terminals. color
// disables itself when stdout is not a TTY or NO_COLOR is set.
func colorStatus(status string) string {
	if status == "ok" {
		return color.GreenString(status)
	}
	return color.RedString(status)
}
