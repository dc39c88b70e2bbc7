package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port        string
	IsDev       bool
	DatabaseURL string
	JWTSecret   []byte
	RigKeyHash  []byte
	Seed        uint64
	Revision    string
	Tag         string
	Branch      string
}

// loadConfig reads an optional .env file and then the environment. Values
// already set in the environment win over the file.
func loadConfig() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnw("could not load .env", zap.Error(err))
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		IsDev:       os.Getenv("NAT_ENV") != "production",
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   []byte(os.Getenv("AUTH_JWT_SECRET")),
		RigKeyHash:  []byte(os.Getenv("RIG_KEY_HASH")),
		Revision:    os.Getenv("GIT_REVISION"),
		Tag:         os.Getenv("GIT_TAG"),
		Branch:      os.Getenv("GIT_BRANCH"),
	}

	if s := os.Getenv("CAMFOUR_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			log.Warnw("ignoring bad CAMFOUR_SEED", "value", s, zap.Error(err))
		} else {
			cfg.Seed = seed
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
