// File: lixenwraith/dotenv/cmd/dotenv/main.go
// Command dotenv inspects and converts env files
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/dotenv"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "dotenv",
		Usage: "inspect and convert env files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   dotenv.DefaultFile,
				Usage:   "env file to read",
			},
			&cli.BoolFlag{
				Name:  "env-fallback",
				Usage: "fall back to process environment for missing keys",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "print the value of a key",
				ArgsUsage: "KEY",
				Action:    getAction,
			},
			{
				Name:   "keys",
				Usage:  "list the keys defined in the file",
				Action: keysAction,
			},
			{
				Name:  "export",
				Usage: "convert the file to another format",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: string(dotenv.FormatDotenv),
						Usage: "output format (dotenv, toml, yaml, json)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write to this file instead of stdout",
					},
				},
				Action: exportAction,
			},
		},
	}
}

// openStore builds the store from the global flags; read failures are logged, not returned
func openStore(cmd *cli.Command) (*dotenv.Store, error) {
	logger, err := newLogger(cmd.String("log-level"))
	if err != nil {
		return nil, err
	}

	store, err := dotenv.NewBuilder().
		WithFile(cmd.String("file")).
		WithEnvFallback(cmd.Bool("env-fallback")).
		WithLogger(logger).
		Build()
	if err != nil && !errors.Is(err, dotenv.ErrSourceRead) {
		return nil, err
	}
	return store, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

func getAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return cli.Exit("get requires exactly one KEY", 2)
	}
	key := cmd.Args().First()

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	value, ok := store.Get(key)
	if !ok {
		return cli.Exit(fmt.Sprintf("key %s is not set", key), 1)
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, value)
	return err
}

func keysAction(ctx context.Context, cmd *cli.Command) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	for _, key := range store.Keys() {
		if _, err := fmt.Fprintln(cmd.Root().Writer, key); err != nil {
			return err
		}
	}
	return nil
}

func exportAction(ctx context.Context, cmd *cli.Command) error {
	format, err := dotenv.ParseFormat(cmd.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	data, err := store.Export(format)
	if err != nil {
		return err
	}

	if out := cmd.String("output"); out != "" {
		return dotenv.WriteFile(out, data)
	}
	_, err = cmd.Root().Writer.Write(data)
	return err
}
