package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-ini/sectionpath"
	"github.com/0xalexb/hjarta-ini/tree"
)

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter selects a node within the configuration data using section-path
// syntax, the same syntax INI section headers use. For example:
//   - "api.permissions" navigates to config["api"]["permissions"]
//   - "remote.'my.host'" navigates to config["remote"]["my.host"]
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/ini for the INI implementation.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Path builds a Provider path from raw keys, quoting keys that contain the separator.
func Path(keys ...string) string {
	return sectionpath.Encode(tree.Path(keys))
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing section %q: %w", path, err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("section", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating section %q: %w", path, err)
			}
		}

		slog.Debug("configuration loaded", slog.String("section", path))

		return target, nil
	}
}
