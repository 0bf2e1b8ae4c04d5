package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Artifacts Artifacts
	JWTSecret string
}

type Server struct {
	Port string
}

type Database struct {
	// Driver is "postgres" or "sqlite".
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	// File is the sqlite database file, used when Driver is "sqlite".
	File string
}

type Artifacts struct {
	// Dir is the directory uploaded test-definition files are stored under.
	Dir string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_FILE", "quizadmin.db")
	viper.SetDefault("ARTIFACT_DIR", "./artifacts")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.File = viper.GetString("DATABASE_FILE")
	config.Artifacts.Dir = viper.GetString("ARTIFACT_DIR")
	config.JWTSecret = viper.GetString("JWT_SECRET")

	log.Info().Str("driver", config.Database.Driver).Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
