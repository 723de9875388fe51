// Package config provides configuration management functionalities and interfaces.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into config struct, with path navigation support
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// The Provider function accepts a path parameter that allows targeting a specific
// section within configuration files. Paths are section paths, dot separated with
// quoting for keys that contain a dot:
//
//	"api.permissions"           -> [api.permissions]
//	"remote.'my.host'"          -> [remote.'my.host']
//	""                          -> entire document
//
// Path builds such a path from raw keys. Parser implementations handle navigation
// internally; the INI parser in config/parser/ini decodes the whole document into a
// tree and picks the node before unmarshaling.
//
// # Example
//
// A typical usage pattern:
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	fetcher, err := filefetcher.NewFetcher("config.ini")()
//	provider := config.Provider(&APIConfig{}, "services.api")
//	cfg, err := provider(iniparser.NewParser(), fetcher)
package config
