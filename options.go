package hjarta

import (
	"github.com/0xalexb/hjarta-ini/config"
	filefetcher "github.com/0xalexb/hjarta-ini/config/fetcher/file"
	iniparser "github.com/0xalexb/hjarta-ini/config/parser/ini"
	"github.com/0xalexb/hjarta-ini/document"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile adds a module that provides config.Parser and config.DataFetcher for the
// INI file at path. Sections are then made injectable with ProvideSection.
// The file is read when the container first needs it; a missing file fails Start.
func WithConfigFile(path string, opts ...document.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Module("config",
			fx.Provide(
				fx.Annotate(
					func() *iniparser.Parser { return iniparser.NewParser(opts...) },
					fx.As(new(config.Parser)),
				),
			),
			fx.Provide(
				fx.Annotate(
					filefetcher.NewFetcher(path),
					fx.As(new(config.DataFetcher)),
				),
			),
		))
	}
}

// ProvideSection returns an Fx option providing *T decoded from the section at path,
// with defaults and validation applied when T implements config.Defaulter or
// config.Validator. It requires WithConfigFile or another source of config.Parser and
// config.DataFetcher.
func ProvideSection[T any](path string) fx.Option {
	return fx.Provide(config.Provider(new(T), path))
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (the default) or "text" log output.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
