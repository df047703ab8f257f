package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	SQLitePath  string `mapstructure:"SQLITE_PATH"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Redis (optional; caching degrades gracefully without it)
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	// Upstream feeds
	WikipediaBaseURL string `mapstructure:"WIKIPEDIA_BASE_URL"`
	ISSAPIURL        string `mapstructure:"ISS_API_URL"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	// Defaults for the upstream services
	if AppConfig.WikipediaBaseURL == "" {
		AppConfig.WikipediaBaseURL = "https://en.wikipedia.org/api/rest_v1"
	}
	if AppConfig.ISSAPIURL == "" {
		AppConfig.ISSAPIURL = "https://api.wheretheiss.at/v1/satellites/25544"
	}
	if AppConfig.SQLitePath == "" {
		AppConfig.SQLitePath = "among-the-space.db"
	}
}
