package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the server needs, loaded from the
// environment with sensible defaults. RedisURL empty means the
// in-memory store.
type Config struct {
	Addr           string
	RedisURL       string
	TTL            time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	EnableMetrics  bool
}

func Load() (*Config, error) {
	addr := os.Getenv("CONTRARIAN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	redisURL := os.Getenv("CONTRARIAN_REDIS_URL")

	ttlHours, err := envInt("CONTRARIAN_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}

	requestTimeout, err := envInt("CONTRARIAN_REQUEST_TIMEOUT", 29)
	if err != nil {
		return nil, err
	}

	logLevel := os.Getenv("CONTRARIAN_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	enableMetrics := os.Getenv("CONTRARIAN_ENABLE_METRICS") == "1"

	if ttlHours < 1 {
		return nil, fmt.Errorf("config: TTL hours must be >= 1, got %d", ttlHours)
	}
	if requestTimeout < 1 {
		return nil, fmt.Errorf("config: request timeout must be >= 1s, got %d", requestTimeout)
	}

	return &Config{
		Addr:           addr,
		RedisURL:       redisURL,
		TTL:            time.Duration(ttlHours) * time.Hour,
		RequestTimeout: time.Duration(requestTimeout) * time.Second,
		LogLevel:       logLevel,
		EnableMetrics:  enableMetrics,
	}, nil
}

func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: opening .env: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if os.Getenv(key) == "" {
			os.Setenv(key, val)
		}
	}
	return scanner.Err()
}

func envInt(key string, defaultVal int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, s, err)
	}
	return v, nil
}
