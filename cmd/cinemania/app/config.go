package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/cinemania/pkg/constants"
	"github.com/agentstation/cinemania/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Movie store configuration
	File      string
	MaxMovies int
	PageSize  int

	// Logging configuration. LogLevel is set by --log-level only;
	// EnvLogLevel holds LOG_LEVEL so the verbosity flags can override it.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// envAliases maps config keys to the environment variables that set them.
var envAliases = map[string]string{
	"file":       "CINEMANIA_FILE",
	"max_movies": "CINEMANIA_MAX_MOVIES",
	"page_size":  "CINEMANIA_PAGE_SIZE",
	"format":     "CINEMANIA_FORMAT",
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.cinemania.yaml or ./.cinemania.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file path. An empty
// path searches the standard locations.
func LoadConfigFile(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		File:      v.GetString("file"),
		MaxMovies: v.GetInt("max_movies"),
		PageSize:  v.GetInt("page_size"),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the numeric settings.
func (c *Config) Validate() error {
	if c.MaxMovies <= 0 {
		return errors.NewConfigError("max_movies", "must be a positive number", nil)
	}
	if c.PageSize <= 0 {
		return errors.NewConfigError("page_size", "must be a positive number", nil)
	}
	return nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("max_movies", constants.MaxMovies)
	v.SetDefault("page_size", constants.LinesPerPage)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.NewConfigError(key, "cannot bind "+env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+path, err)
		}
		return v, nil
	}

	// Search for config in standard locations
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(".cinemania")

	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()
	return v, nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first because godotenv never overrides a variable
// that is already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
