package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mlevan/xbot/internal/config"
	"github.com/mlevan/xbot/internal/session"
	"github.com/mlevan/xbot/internal/twitter"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "xbot",
	Short: "Post, thread, and delete tweets from the command line",
	Long: `xbot is a small helper around the X (Twitter) v2 API: it loads
credentials from the environment or a .env file, verifies them, and
posts single tweets, reply-chain threads, and deletions.`,
}

func init() {
	// Load .env file if present
	_ = godotenv.Load()

	// Set up logging
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(os.Getenv("LOG_LEVEL")),
	})))

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to the .env file with credentials")
}

// parseLogLevel maps a LOG_LEVEL value to a slog level, defaulting to
// info for anything unrecognized.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newSession loads and validates credentials, then bootstraps an
// authenticated session against the live platform.
func newSession(ctx context.Context) (*session.Session, *config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.ValidateCredentials(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	client := twitter.NewClient(twitter.Config{
		APIKey:            cfg.APIKey,
		APISecret:         cfg.APISecret,
		AccessToken:       cfg.AccessToken,
		AccessTokenSecret: cfg.AccessTokenSecret,
		BearerToken:       cfg.BearerToken,
	})

	sess, err := session.New(ctx, client)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap session: %w", err)
	}

	return sess, cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
