// Package config loads CLI settings from the config file, a local .env file
// and OMNI_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "OMNI"
	configDir  = ".gimme-omni"
	configFile = "config.toml"

	DefaultBaseURL   = "https://tsops-api-phl.dev.osisoft.int"
	DefaultSecretRef = "tsops://token"
	DefaultTimeout   = 30 * time.Second
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Agent   AgentConfig   `mapstructure:"agent"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Secrets SecretsConfig `mapstructure:"secrets"`
	Log     LogConfig     `mapstructure:"log"`
	Report  ReportConfig  `mapstructure:"report"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

type APIConfig struct {
	BaseURL            string        `mapstructure:"base_url" validate:"required,url"`
	Timeout            time.Duration `mapstructure:"timeout" validate:"gt=0"`
	CAFile             string        `mapstructure:"ca_file"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
}

type AgentConfig struct {
	Username string `mapstructure:"username"`
}

type AuthConfig struct {
	SecretRef string `mapstructure:"secret_ref"`
}

type SecretsConfig struct {
	// Backend is auto (pass with file fallback), pass or file.
	Backend string `mapstructure:"backend" validate:"oneof=auto pass file"`
	Dir     string `mapstructure:"dir" validate:"required"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

type ReportConfig struct {
	ProjectRank bool `mapstructure:"project_rank"`
	ExcludeSelf bool `mapstructure:"exclude_self"`
}

// DefaultPath returns $HOME/.gimme-omni/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configFile), nil
}

// Override adjusts a loaded config before it is validated. Command-line
// flags use it so their values go through the same checks as the file.
type Override func(*Config)

// WithLogLevel replaces log.level when level is not empty.
func WithLogLevel(level string) Override {
	return func(c *Config) {
		if level != "" {
			c.Log.Level = level
		}
	}
}

// Load reads the configuration. An explicit path must exist; when path is
// empty the default location is used if present.
func Load(path string, overrides ...Override) (Config, error) {
	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, homeDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("toml")

	if path == "" {
		path = filepath.Join(homeDir, configDir, configFile)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = path
	for _, override := range overrides {
		if override != nil {
			override(&cfg)
		}
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("api.ca_file", "")
	v.SetDefault("api.insecure_skip_verify", false)
	v.SetDefault("agent.username", "")
	v.SetDefault("auth.secret_ref", DefaultSecretRef)
	v.SetDefault("secrets.backend", "auto")
	v.SetDefault("secrets.dir", filepath.Join(homeDir, configDir, "secrets"))
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("report.project_rank", true)
	v.SetDefault("report.exclude_self", false)
}

func (c *Config) normalize() {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	c.Agent.Username = strings.TrimSpace(c.Agent.Username)
	c.Auth.SecretRef = strings.TrimSpace(c.Auth.SecretRef)
	c.Secrets.Backend = strings.ToLower(strings.TrimSpace(c.Secrets.Backend))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Level == "warning" {
		c.Log.Level = "warn"
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
