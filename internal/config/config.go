package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Peer Peer `validate:"required"`

	OrderRPC OrderRPC `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

// Peer — HTTP API сервиса A (пользователи и fallback для заказов).
type Peer struct {
	UserBase  string `validate:"required,url"`
	OrderBase string `validate:"required,url"`

	Timeout time.Duration `validate:"gte=0"`
}

// OrderRPC — типизированный RPC-канал к сервису заказов сервиса A.
type OrderRPC struct {
	Addr string `validate:"required,hostname_port"`

	CallTimeout time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8082"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "notification-service"),
			Topic:   env("KAFKA_TOPIC", "order-events"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Peer: Peer{
			UserBase:  env("PEER_USER_BASE", "http://localhost:8081/api/users"),
			OrderBase: env("PEER_ORDER_BASE", "http://localhost:8081/api/orders"),

			Timeout: envDuration("PEER_HTTP_TIMEOUT", 5*time.Second),
		},

		OrderRPC: OrderRPC{
			Addr: env("ORDER_RPC_ADDR", "localhost:20880"),

			CallTimeout: envDuration("ORDER_RPC_CALL_TIMEOUT", 5*time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
