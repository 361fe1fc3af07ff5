package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	StaffPIN  string
	JWTSecret string
	JWTTTL    time.Duration

	// UrgencyAfter is how old a pending ticket may get before the
	// kitchen board flags it. Tunable, not a contract.
	UrgencyAfter time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment and defaults")
	}

	return &Config{
		DBSource:     getEnv("DB_SOURCE", "parrilla.db"),
		Port:         getEnv("PORT", "8000"),
		StaffPIN:     getEnv("STAFF_PIN", "1234"),
		JWTSecret:    getEnv("JWT_SECRET", "changeme"),
		JWTTTL:       time.Duration(12) * time.Hour,
		UrgencyAfter: time.Duration(getEnvInt("URGENCY_AFTER_MIN", 20)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
