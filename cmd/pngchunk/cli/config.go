package cli

import (
	"fmt"
	"os"

	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/codec"
	"github.com/rekal-dev/pngchunk/cmd/pngchunk/cli/db"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Config is the resolved configuration shared by all commands. Each field
// comes from a persistent flag whose default is read from the environment.
type Config struct {
	DBPath   string
	LogLevel zerolog.Level
	Level    codec.Level
}

const (
	envDB       = "PNGCHUNK_DB"
	envLogLevel = "PNGCHUNK_LOG_LEVEL"
	envLevel    = "PNGCHUNK_LEVEL"
)

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func addConfigFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("db", envOr(envDB, db.DefaultPath), "Path of the chunk index database ($"+envDB+")")
	f.String("log-level", envOr(envLogLevel, "warn"), "Log level: debug, info, warn, error ($"+envLogLevel+")")
	f.String("level", envOr(envLevel, "default"), "Compression level: none, fastest, default, best ($"+envLevel+")")
}

// loadConfig resolves the persistent flags of cmd.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	f := cmd.Flags()
	dbPath, err := f.GetString("db")
	if err != nil {
		return nil, err
	}
	logLevel, err := f.GetString("log-level")
	if err != nil {
		return nil, err
	}
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", logLevel, err)
	}
	levelName, err := f.GetString("level")
	if err != nil {
		return nil, err
	}
	level, err := codec.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return &Config{DBPath: dbPath, LogLevel: lvl, Level: level}, nil
}
