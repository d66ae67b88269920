// Package config loads settings for huffcodec and huffserver from the
// environment.  Command-line flags in each main package take precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DefaultPort        = "8080"
	DefaultSourceFile  = "source.txt"
	DefaultEncodedFile = "encoded.txt"
	DefaultBatchLimit  = 4
)

// Config holds the settings shared by huffcodec and huffserver.
type Config struct {
	// Port is the HTTP listen port for huffserver.
	Port string

	// DatabaseURL is a PostgreSQL DSN.  Empty selects the in-memory
	// document store.
	DatabaseURL string

	// SourceFile and EncodedFile are the default plain and encoded file
	// names for huffcodec.
	SourceFile  string
	EncodedFile string

	// BatchLimit caps the number of files huffcodec processes at once.
	BatchLimit int

	Debug bool
}

// Load reads HUFF_PORT, HUFF_DATABASE_URL, HUFF_SOURCE_FILE,
// HUFF_ENCODED_FILE, HUFF_BATCH_LIMIT and HUFF_DEBUG.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Port:        DefaultPort,
		SourceFile:  DefaultSourceFile,
		EncodedFile: DefaultEncodedFile,
		BatchLimit:  DefaultBatchLimit,
	}

	if v, ok := lookup("HUFF_PORT"); ok && v != "" {
		cfg.Port = v
	}
	if v, ok := lookup("HUFF_DATABASE_URL"); ok {
		cfg.DatabaseURL = v
	}
	if v, ok := lookup("HUFF_SOURCE_FILE"); ok && v != "" {
		cfg.SourceFile = v
	}
	if v, ok := lookup("HUFF_ENCODED_FILE"); ok && v != "" {
		cfg.EncodedFile = v
	}
	if v, ok := lookup("HUFF_BATCH_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("HUFF_BATCH_LIMIT: want a positive integer, got %q", v)
		}
		cfg.BatchLimit = n
	}
	if v, ok := lookup("HUFF_DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("HUFF_DEBUG: %w", err)
		}
		cfg.Debug = b
	}
	return cfg, nil
}
