package config_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-ini/config"
	filefetcher "github.com/0xalexb/hjarta-ini/config/fetcher/file"
	iniparser "github.com/0xalexb/hjarta-ini/config/parser/ini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AppConfig represents application configuration.
type AppConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SetDefaults sets default values for the configuration.
func (c *AppConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Port == 0 {
		c.Port = 8080
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func ExampleProvider() {
	// Create a target configuration struct.
	cfg := &AppConfig{}

	// Create a provider function for the [app] section.
	provider := config.Provider(cfg, "app")

	// Create production INI parser and static data fetcher.
	// For file-based configuration, use filefetcher.NewFetcher(filepath)() instead.
	parser := iniparser.NewParser()
	fetcher := &StaticDataFetcher{
		Data: []byte("[app]\nhost = example.com\n"),
	}

	// Execute the provider to read, parse, set defaults, and validate.
	result, err := provider(parser, fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s, Port: %d\n", result.Host, result.Port)
	// Output: Host: example.com, Port: 8080
}

// ServerConfig represents a nested server configuration for testing.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Timeout int    `yaml:"timeout"`
}

// DatabaseConfig represents a database configuration for testing.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// TestINIParser_PathNavigation tests the production INI parser with various path navigation scenarios.
func TestINIParser_PathNavigation(t *testing.T) {
	t.Parallel()

	iniData := []byte(`
[server]
host = api.example.com
port = 8080
timeout = 30

[database]

[database.connection]
host = db.example.com
port = 5432
name = myapp

[database.credentials]
user = admin
password = secret
`)

	parser := iniparser.NewParser()

	t.Run("navigate to nested section", func(t *testing.T) {
		t.Parallel()

		cfg := &ServerConfig{}
		err := parser.Parse(iniData, cfg, "server")
		require.NoError(t, err)

		assert.Equal(t, "api.example.com", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 30, cfg.Timeout)
	})

	t.Run("navigate to deeply nested section", func(t *testing.T) {
		t.Parallel()

		cfg := &DatabaseConfig{}
		err := parser.Parse(iniData, cfg, config.Path("database", "connection"))
		require.NoError(t, err)

		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "myapp", cfg.Name)
	})

	t.Run("empty path parses entire document", func(t *testing.T) {
		t.Parallel()

		cfg := make(map[string]any)
		err := parser.Parse(iniData, &cfg, "")
		require.NoError(t, err)

		// Verify the top-level structure exists
		assert.Contains(t, cfg, "server")
		assert.Contains(t, cfg, "database")
	})

	t.Run("invalid path returns error", func(t *testing.T) {
		t.Parallel()

		cfg := &ServerConfig{}
		err := parser.Parse(iniData, cfg, "nonexistent.path")
		require.Error(t, err)
		assert.ErrorIs(t, err, iniparser.ErrPathNotFound)
	})

	t.Run("path to non-map value returns error", func(t *testing.T) {
		t.Parallel()

		cfg := &ServerConfig{}
		err := parser.Parse(iniData, cfg, "server.host.invalid")
		require.Error(t, err)
	})
}

func TestProvider_FileDataFetcher(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.ini")

	err := os.WriteFile(configPath, []byte("[services.api]\nhost = api.internal\nport = 9000\n"), 0o600)
	require.NoError(t, err)

	fetcher, err := filefetcher.NewFetcher(configPath)()
	require.NoError(t, err)

	result, err := config.Provider(&AppConfig{}, "services.api")(iniparser.NewParser(), fetcher)
	require.NoError(t, err)

	assert.Equal(t, "api.internal", result.Host)
	assert.Equal(t, 9000, result.Port)
}

func ExampleProvider_pathNavigation() {
	// Example INI configuration with nested sections
	iniData := []byte(`
[services.api]
host = api.example.com
port = 3000
timeout = 60

[services.admin]
host = admin.example.com
port = 8080
timeout = 120
`)

	// Create target configuration struct
	cfg := &ServerConfig{}

	// Create provider with path navigation - targeting the [services.api] section
	provider := config.Provider(cfg, "services.api")

	// Create production INI parser and static data fetcher
	parser := iniparser.NewParser()
	fetcher := &StaticDataFetcher{Data: iniData}

	// Execute the provider - it will navigate to the [services.api] section
	result, err := provider(parser, fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("API Config - Host: %s, Port: %d, Timeout: %d\n", result.Host, result.Port, result.Timeout)
	// Output: API Config - Host: api.example.com, Port: 3000, Timeout: 60
}

func ExamplePath() {
	fmt.Println(config.Path("remote", "my.host"))
	// Output: remote.'my.host'
}
