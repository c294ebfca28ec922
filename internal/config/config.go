// Package config centralizes process configuration. Values come from
// environment variables, with an optional .env file for development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every configuration value the bot needs.
type Config struct {
	Discord Discord
	Redis   Redis
	Locale  Locale
	Limits  Limits
	Jobs    Jobs
}

// Discord holds the gateway credentials.
type Discord struct {
	Token         string
	ApplicationID string
	// GuildID scopes command registration to one guild during development
	GuildID string
}

// Redis holds the persistence collaborator settings.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Locale holds the catalog settings.
type Locale struct {
	Dir         string
	DefaultLang string
}

// Limits bounds what a drink and a menu may look like.
type Limits struct {
	MaxPortionSize     int
	MaxPortionsPerDay  int
	MaxDrinkNameLength int
	MaxDrinksPerServer int
}

// Jobs holds the maintenance cadences.
type Jobs struct {
	DecayInterval time.Duration
	DecayStep     int
	SweepInterval time.Duration
	OfferTTL      time.Duration
}

// Load builds a Config from the environment. A .env file is loaded
// first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, errors.New("DISCORD_TOKEN environment variable is required")
	}

	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	maxPortionSize, err := intEnv("MAX_PORTION_SIZE", 2000)
	if err != nil {
		return nil, err
	}
	maxPortionsPerDay, err := intEnv("MAX_PORTIONS_PER_DAY", 100)
	if err != nil {
		return nil, err
	}
	maxNameLength, err := intEnv("MAX_DRINK_NAME_LENGTH", 64)
	if err != nil {
		return nil, err
	}
	maxDrinks, err := intEnv("MAX_DRINKS_PER_SERVER", 40)
	if err != nil {
		return nil, err
	}

	decayInterval, err := durationEnv("DECAY_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}
	decayStep, err := intEnv("DECAY_STEP", 1)
	if err != nil {
		return nil, err
	}
	sweepInterval, err := durationEnv("OFFER_SWEEP_INTERVAL", 10*time.Minute)
	if err != nil {
		return nil, err
	}
	offerTTL, err := durationEnv("OFFER_TTL", 10*time.Minute)
	if err != nil {
		return nil, err
	}

	return &Config{
		Discord: Discord{
			Token:         token,
			ApplicationID: os.Getenv("APPLICATION_ID"),
			GuildID:       os.Getenv("GUILD_ID"),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Locale: Locale{
			Dir:         getEnv("LOCALES_DIR", "locales"),
			DefaultLang: getEnv("DEFAULT_LANG", "en_US"),
		},
		Limits: Limits{
			MaxPortionSize:     maxPortionSize,
			MaxPortionsPerDay:  maxPortionsPerDay,
			MaxDrinkNameLength: maxNameLength,
			MaxDrinksPerServer: maxDrinks,
		},
		Jobs: Jobs{
			DecayInterval: decayInterval,
			DecayStep:     decayStep,
			SweepInterval: sweepInterval,
			OfferTTL:      offerTTL,
		},
	}, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
