package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	OpenAIAPIKey     string
	LLMBaseURL       string
	LLMModel         string
	ClientURL        string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:             getEnvOrDefault("PORT", "8000"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "interview_service"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
		ClientURL:        getEnvOrDefault("CLIENT_URL", "http://localhost:5173"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
