package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".bonita"
	envPrefix  = "BNT"

	ProfileKey           = "profile"
	URLKey               = "url"
	UserKey              = "user"
	PasswordKey          = "password"
	ProfilesPathKey      = "profiles.path"
	JournalPathKey       = "journal.path"
	JournalMaxRecordsKey = "journal.max_records"
	SecretsPathKey       = "secrets.path"
	SecretsBackendKey    = "secrets.backend"
	RequestTimeoutKey    = "client.request_timeout"
	RateLimitKey         = "client.rate_limit"
	RateBurstKey         = "client.rate_burst"
	LookupAttemptsKey    = "lookup.attempts"
	LookupDelayKey       = "lookup.delay"
)

// LoadConfig reads ~/.bonita/config.toml into cfg when it exists and
// registers defaults for every key. BNT_-prefixed environment variables
// override file values, with dots in keys spelled as underscores, so
// BNT_URL, BNT_USER and BNT_PASSWORD override the selected profile.
func LoadConfig(cfg *viper.Viper) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)

	cfg.SetDefault(ProfileKey, "default")
	cfg.SetDefault(ProfilesPathKey, filepath.Join(dir, "profiles.toml"))
	cfg.SetDefault(JournalPathKey, filepath.Join(dir, "journal.toml"))
	cfg.SetDefault(JournalMaxRecordsKey, 1000)
	cfg.SetDefault(SecretsPathKey, filepath.Join(dir, "secrets"))
	cfg.SetDefault(SecretsBackendKey, "auto")
	cfg.SetDefault(RequestTimeoutKey, 30*time.Second)
	cfg.SetDefault(RateLimitKey, 0.0)
	cfg.SetDefault(RateBurstKey, 1)
	cfg.SetDefault(LookupAttemptsKey, 3)
	cfg.SetDefault(LookupDelayKey, time.Second)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir), nil
}

// pathFromConfig returns the configured path for key, or fileName inside the
// config directory.
func pathFromConfig(cfg *viper.Viper, key, fileName string) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(key)
	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, fileName)
	}

	return normalizePath(path)
}
