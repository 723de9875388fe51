package main

import (
	"fmt"
	"io"
	"log/slog"

	hjarta "github.com/0xalexb/hjarta-ini"
	"github.com/0xalexb/hjarta-ini/config"
	filefetcher "github.com/0xalexb/hjarta-ini/config/fetcher/file"
	iniparser "github.com/0xalexb/hjarta-ini/config/parser/ini"
	"github.com/0xalexb/hjarta-ini/convert"
	"github.com/0xalexb/hjarta-ini/document"
	"github.com/0xalexb/hjarta-ini/logging"

	"github.com/urfave/cli/v2"
)

const (
	flagLogLevel       = "log-level"
	flagLogFormat      = "log-format"
	flagConfig         = "config"
	flagCaseInsensitive = "case-insensitive-keys"
	flagFormat         = "format"
	flagWrite          = "write"
	flagDiff           = "diff"
	flagString         = "string"

	loggerKey = "logger"
)

func newApp(stdin io.Reader, stdout, stderr io.Writer, install func(*slog.Logger)) *cli.App {
	formatFlag := &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"f"},
		Value:   string(convert.FormatYAML),
		Usage:   "tree format: yaml, json or toml",
	}

	return &cli.App{
		Name:      "hjarta-ini",
		Usage:     "read, convert and edit INI files with nested section paths",
		Version:   fmt.Sprintf("%s (codec %s, built %s)", hjarta.Version, hjarta.CodecVersion, hjarta.CompiledAt),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Metadata:  map[string]any{},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagLogLevel, Value: "warn", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: flagLogFormat, Value: logging.FormatText, Usage: "json or text"},
			&cli.StringFlag{Name: flagConfig, Usage: "INI file with a [logging] section for this tool"},
			&cli.BoolFlag{Name: flagCaseInsensitive, Usage: "lowercase keys while reading"},
		},
		Before: func(c *cli.Context) error {
			logger, err := setupLogging(c)
			if err != nil {
				return err
			}

			c.App.Metadata[loggerKey] = logger
			install(logger)

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "print an INI file as a tree",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{formatFlag},
				Action:    decodeAction,
			},
			{
				Name:      "encode",
				Usage:     "print a tree file as INI",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{formatFlag},
				Action:    encodeAction,
			},
			{
				Name:      "fmt",
				Usage:     "rewrite an INI file in canonical form",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: flagWrite, Aliases: []string{"w"}, Usage: "write the result back to FILE"},
					&cli.BoolFlag{Name: flagDiff, Aliases: []string{"d"}, Usage: "print a line diff instead of the result"},
				},
				Action: fmtAction,
			},
			{
				Name:      "get",
				Usage:     "print one value",
				ArgsUsage: "FILE SECTION KEY",
				Action:    getAction,
			},
			{
				Name:      "set",
				Usage:     "store one value, creating FILE and SECTION as needed",
				ArgsUsage: "FILE SECTION KEY VALUE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: flagString, Aliases: []string{"s"}, Usage: "store VALUE as a string without decoding it"},
				},
				Action: setAction,
			},
		},
	}
}

// setupLogging builds the logger from the optional config file, then the flags that were
// given explicitly.
func setupLogging(c *cli.Context) (*slog.Logger, error) {
	loggerConfig := logging.LoggerConfig{
		Level:  c.String(flagLogLevel),
		Format: c.String(flagLogFormat),
	}

	if path := c.String(flagConfig); path != "" {
		fetcher, err := filefetcher.NewFetcher(path)()
		if err != nil {
			return nil, err
		}

		loaded, err := config.Provider(&logging.LoggerConfig{}, "logging")(iniparser.NewParser(), fetcher)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}

		if !c.IsSet(flagLogLevel) {
			loggerConfig.Level = loaded.Level
		}

		if !c.IsSet(flagLogFormat) {
			loggerConfig.Format = loaded.Format
		}
	}

	err := loggerConfig.Validate()
	if err != nil {
		return nil, err
	}

	return logging.NewLogger(loggerConfig, c.App.ErrWriter), nil
}

// commandLogger returns the logger built for this run of the app.
func commandLogger(c *cli.Context) *slog.Logger {
	if logger, ok := c.App.Metadata[loggerKey].(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}

func documentOptions(c *cli.Context) []document.Option {
	if c.Bool(flagCaseInsensitive) {
		return []document.Option{document.WithCaseInsensitiveKeys()}
	}

	return nil
}
