package config

import (
	"log/slog"
	"time"
)

type Config struct {
	Port              string
	MongoURI          string
	MongoDB           string
	RabbitURI         string // vazio desliga a publicação de eventos
	RabbitQueue       string
	LogLevel          slog.Level
	OpTimeout         time.Duration // por chamada ao Mongo
	Location          *time.Location
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

func Load() *Config {
	loadDotEnv()
	return &Config{
		Port:              getenvAny("8080", "API_PORT", "PORT"),
		MongoURI:          getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:           getenv("MONGO_DB", "OfficeBuildingManagement"),
		RabbitURI:         getenvAny("", "RABBITMQ_URL", "RABBIT_URI"),
		RabbitQueue:       getenvAny("building_events", "RABBITMQ_QUEUE", "RABBIT_QUEUE"),
		LogLevel:          parseLevel(getenv("LOG_LEVEL", "info")),
		OpTimeout:         parseDuration("OP_TIMEOUT", 10*time.Second),
		Location:          parseLocation(getenv("TZ_NAME", "")),
		ReadHeaderTimeout: parseDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:   parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
