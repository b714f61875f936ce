package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingCredentials indicates that one or more of the required
// Twitter credential variables is absent or empty.
var ErrMissingCredentials = errors.New("missing required credentials")

// Config holds all application configuration.
type Config struct {
	// Twitter API credentials
	APIKey            string
	APISecret         string
	AccessToken       string
	AccessTokenSecret string
	BearerToken       string

	// Post history
	HistoryDBPath string
}

// Load reads configuration from environment variables, merging the
// named .env file first if it exists. The returned Config is a plain
// value; nothing reads the environment after Load returns.
func Load(envPath string) (*Config, error) {
	if envPath == "" {
		envPath = ".env"
	}
	// A missing .env file is fine; credentials may come from the
	// ambient environment instead.
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Overload(envPath); err != nil {
			return nil, fmt.Errorf("load %s: %w", envPath, err)
		}
	}

	cfg := &Config{
		APIKey:            getEnv("TWITTER_API_KEY", ""),
		APISecret:         getEnv("TWITTER_API_SECRET", ""),
		AccessToken:       getEnv("TWITTER_ACCESS_TOKEN", ""),
		AccessTokenSecret: getEnv("TWITTER_ACCESS_TOKEN_SECRET", ""),
		BearerToken:       getEnv("TWITTER_BEARER_TOKEN", ""),
		HistoryDBPath:     getEnv("HISTORY_DB_PATH", "data/xbot.db"),
	}

	return cfg, nil
}

// ValidateCredentials checks that all five Twitter credentials are
// present. The check is all-or-nothing: a single error names every
// missing variable so the operator fixes them in one pass.
func (c *Config) ValidateCredentials() error {
	var missing []string
	for _, cred := range []struct {
		name  string
		value string
	}{
		{"TWITTER_API_KEY", c.APIKey},
		{"TWITTER_API_SECRET", c.APISecret},
		{"TWITTER_ACCESS_TOKEN", c.AccessToken},
		{"TWITTER_ACCESS_TOKEN_SECRET", c.AccessTokenSecret},
		{"TWITTER_BEARER_TOKEN", c.BearerToken},
	} {
		if cred.value == "" {
			missing = append(missing, cred.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateForHistory checks configuration needed for the post-history store.
func (c *Config) ValidateForHistory() error {
	if c.HistoryDBPath == "" {
		return fmt.Errorf("HISTORY_DB_PATH is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
