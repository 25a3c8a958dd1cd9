package storage

import (
	"fmt"

	"food_truck_finder/internal/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect открывает подключение к Postgres.
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("подключение к базе данных: %w", err)
	}

	fmt.Println("Подключение к базе данных успешно!")
	return db, nil
}

// InitRedis создаёт клиент Redis для кэширования списков расписаний.
// Если адрес не задан, возвращается nil и кэширование отключено.
func InitRedis(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}
