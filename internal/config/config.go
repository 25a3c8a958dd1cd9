package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения, собранную из переменных окружения.
type Config struct {
	Port string

	DB DBConfig

	// Адрес Redis; пустая строка — кэширование списков отключено.
	RedisAddr     string
	RedisPassword string

	GeocodingKey string

	AccessSecret  []byte
	RefreshSecret []byte

	AllowedOrigins []string
}

// DBConfig — параметры подключения к Postgres.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Load читает конфигурацию из окружения. Вне контейнера (ENV_CHEK не задан)
// предварительно подгружается .env.
func Load() (*Config, error) {
	if os.Getenv("ENV_CHEK") == "" {
		fmt.Println("Подключение к .env")
		if err := godotenv.Load(); err != nil {
			log.Println("Файл .env не найден, используются переменные окружения")
		}
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		GeocodingKey:  os.Getenv("GOOGLE_GEOCODING_KEY"),
		AccessSecret:  []byte(os.Getenv("JWT_ACCESS_SECRET")),
		RefreshSecret: []byte(os.Getenv("JWT_REFRESH_SECRET")),
	}

	if cfg.DB.Host == "" || cfg.DB.Port == "" || cfg.DB.User == "" || cfg.DB.Name == "" {
		return nil, fmt.Errorf("не заданы переменные DB_HOST/DB_PORT/DB_USER/DB_NAME")
	}
	if cfg.GeocodingKey == "" {
		return nil, fmt.Errorf("не задана переменная GOOGLE_GEOCODING_KEY")
	}
	if len(cfg.AccessSecret) == 0 || len(cfg.RefreshSecret) == 0 {
		return nil, fmt.Errorf("не заданы переменные JWT_ACCESS_SECRET/JWT_REFRESH_SECRET")
	}

	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
