package command

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/prospyr-go/internal/connection"
)

// RequestCommand returns the request command.
func RequestCommand() *cli.Command {
	return &cli.Command{
		Name:      "request",
		Aliases:   []string{"req"},
		Usage:     "Send one API request and print the raw response body",
		ArgsUsage: "METHOD PATH",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Request body; @FILE reads it from a file",
			},
			&cli.StringSliceFlag{
				Name:    "header",
				Aliases: []string{"H"},
				Usage:   "Extra header as KEY=VALUE (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Query parameter as KEY=VALUE (repeatable)",
			},
		},
		Action: requestAction,
	}
}

func requestAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("request requires METHOD and PATH arguments", 2)
	}
	method := strings.ToUpper(c.Args().Get(0))

	opts, err := requestOptions(c.StringSlice("header"), c.StringSlice("query"))
	if err != nil {
		return err
	}
	body, err := requestBody(c.String("data"))
	if err != nil {
		return err
	}

	s, err := state(c)
	if err != nil {
		return err
	}
	conn, err := s.selected(c)
	if err != nil {
		return err
	}

	target := resolveTarget(conn, c.Args().Get(1))
	resp, err := conn.HTTPMethod(c.Context, method, target, body, opts...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(c.App.Writer, resp.Body); err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return cli.Exit(fmt.Sprintf("%s %s: %s", method, target, resp.Status), 1)
	}
	return nil
}

func requestOptions(headers, query []string) ([]connection.RequestOption, error) {
	var opts []connection.RequestOption
	for _, h := range headers {
		k, v, ok := strings.Cut(h, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid header %q, want KEY=VALUE", h)
		}
		opts = append(opts, connection.WithHeader(k, v))
	}
	for _, q := range query {
		k, v, ok := strings.Cut(q, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid query parameter %q, want KEY=VALUE", q)
		}
		opts = append(opts, connection.WithQuery(k, v))
	}
	return opts, nil
}

func requestBody(data string) (io.Reader, error) {
	switch {
	case data == "":
		return nil, nil
	case strings.HasPrefix(data, "@"):
		b, err := os.ReadFile(data[1:])
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		return bytes.NewReader(b), nil
	default:
		return strings.NewReader(data), nil
	}
}
