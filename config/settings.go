package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Settings struct {
	HTTPAddr string `mapstructure:"http_addr"`

	DBDriver   string `mapstructure:"db_driver"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBName     string `mapstructure:"db_name"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`

	RedisHost       string        `mapstructure:"redis_host"`
	RedisPort       string        `mapstructure:"redis_port"`
	GeocodeRedisTTL time.Duration `mapstructure:"geocode_redis_ttl"`

	KafkaBroker      string `mapstructure:"kafka_broker"`
	KafkaOrdersTopic string `mapstructure:"kafka_orders_topic"`
	KafkaGroupID     string `mapstructure:"kafka_group_id"`

	YandexAPIKey    string        `mapstructure:"yandex_api_key"`
	GeocoderURL     string        `mapstructure:"geocoder_url"`
	GeocoderTimeout time.Duration `mapstructure:"geocoder_timeout"`

	PhoneRegion string `mapstructure:"phone_region"`
	MediaURL    string `mapstructure:"media_url"`
	StaticURL   string `mapstructure:"static_url"`
}

var defaults = map[string]any{
	"http_addr":          ":8080",
	"db_driver":          "postgres",
	"db_host":            "localhost",
	"db_port":            "5432",
	"db_name":            "foodcart",
	"db_user":            "postgres",
	"db_password":        "",
	"redis_host":         "",
	"redis_port":         "6379",
	"geocode_redis_ttl":  24 * time.Hour,
	"kafka_broker":       "",
	"kafka_orders_topic": "orders",
	"kafka_group_id":     "foodcart-geocode-warmer",
	"yandex_api_key":     "",
	"geocoder_url":       "https://geocode-maps.yandex.ru/1.x",
	"geocoder_timeout":   10 * time.Second,
	"phone_region":       "RU",
	"media_url":          "/media/",
	"static_url":         "/static/",
}

// Load reads settings from the environment (upper-cased keys, e.g. DB_HOST)
// and, when cfgFile is not empty, from that file. Environment wins over the file.
func Load(v *viper.Viper, cfgFile string) (Settings, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}

	switch s.DBDriver {
	case "postgres", "pgx":
	default:
		return Settings{}, fmt.Errorf("unsupported db_driver %q", s.DBDriver)
	}
	return s, nil
}
