package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	ServerPort         int
	YouTubeCredentials string
	RedisAddr          string
	RedisPassword      string
	JWTPublicKey       string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}
	if !viper.IsSet("YOUTUBE_CREDENTIALS_FILE") {
		return nil, fmt.Errorf("YOUTUBE_CREDENTIALS_FILE is required")
	}

	return &Settings{
		ServerPort:         viper.GetInt("SERVER_PORT"),
		YouTubeCredentials: viper.GetString("YOUTUBE_CREDENTIALS_FILE"),
		RedisAddr:          viper.GetString("REDIS_ADDR"),
		RedisPassword:      viper.GetString("REDIS_PASSWORD"),
		JWTPublicKey:       viper.GetString("JWT_PUBLIC_KEY"),
	}, nil
}
