package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

func NewConfig() Config {
	return Config{
		ServerPort:     optionalEnv("SERVER_PORT", "8080"),
		AllowedOrigins: strings.Split(optionalEnv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
		RabbitMq: RabbitMq{
			Host:     requireEnv("RABBITMQ_HOST"),
			Port:     requireEnvAsInt("RABBITMQ_PORT"),
			Username: requireEnv("RABBITMQ_USERNAME"),
			Password: requireEnv("RABBITMQ_PASSWORD"),
		},
		Redis: Redis{
			Host: requireEnv("REDIS_HOST"),
			Port: requireEnvAsInt("REDIS_PORT"),
		},
		Smtp: Smtp{
			Host:     requireEnv("SMTP_HOST"),
			Port:     requireEnvAsInt("SMTP_PORT"),
			Username: requireEnv("SMTP_USERNAME"),
			Password: requireEnv("SMTP_PASSWORD"),
			From:     optionalEnv("SMTP_FROM", "Event Hub <no-reply@eventt-hub.app>"),
		},
		JaegerCollectorURL: os.Getenv("JAEGER_COLLECTOR_URL"),
	}
}

type Config struct {
	ServerPort         string
	AllowedOrigins     []string
	Postgresql         Postgresql
	RabbitMq           RabbitMq
	Redis              Redis
	Smtp               Smtp
	JaegerCollectorURL string
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type RabbitMq struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (r RabbitMq) GetUrl() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", r.Username, r.Password, r.Host, r.Port)
}

type Redis struct {
	Host string
	Port int
}

type Smtp struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("Can't find environment variable: %s\n", key)
	}
	return value
}

func requireEnvAsInt(key string) int {
	valueStr := requireEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("Can't parse value as integer: %s", err.Error())
	}
	return value
}

func optionalEnv(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
