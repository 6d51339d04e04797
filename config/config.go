package config

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// PostgresDSN builds a keyword/value DSN understood by both lib/pq and pgx.
func PostgresDSN(s Settings) string {
	return "host=" + s.DBHost + " port=" + s.DBPort + " user=" + s.DBUser +
		" password=" + s.DBPassword + " dbname=" + s.DBName + " sslmode=disable"
}

func MustInitPostgres(s Settings) *sql.DB {
	db, err := sql.Open(s.DBDriver, PostgresDSN(s))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

// InitRedis returns nil when no Redis host is configured.
func InitRedis(s Settings) *redis.Client {
	if s.RedisHost == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: s.RedisHost + ":" + s.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(s Settings) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{s.KafkaBroker},
		Topic:   s.KafkaOrdersTopic,
		GroupID: s.KafkaGroupID,
	})
}

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(s Settings) *kafka.Writer {
	if s.KafkaBroker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(s.KafkaBroker),
		Topic:        s.KafkaOrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
}
