package config

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"medieval-moderator/model"
)

// Load reads configuration from an optional config.yaml, environment
// variables, and a .env file. Environment variables win over the file, and
// everything except BOT_TOKEN has a default.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./data")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("prefix", "!")
	v.SetDefault("db_path", "data/moderator.db")
	v.SetDefault("sweep_interval", "1m")
	v.SetDefault("progress_interval", "5m")
	v.SetDefault("message_retention", "720h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("Info: config.yaml not found, using defaults and environment")
	}

	token := v.GetString("bot_token")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	return &model.Config{
		BotToken:         token,
		Prefix:           v.GetString("prefix"),
		DBPath:           v.GetString("db_path"),
		SweepInterval:    v.GetDuration("sweep_interval"),
		ProgressInterval: v.GetDuration("progress_interval"),
		MessageRetention: v.GetDuration("message_retention"),
	}, nil
}
