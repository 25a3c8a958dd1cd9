package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_CHEK", "1") // не подгружать .env в тестах
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "ftf")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "ftf")
	t.Setenv("GOOGLE_GEOCODING_KEY", "test-key")
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("ALLOWED_ORIGINS", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	assert.NoError(t, err, "Конфигурация с обязательными переменными должна загружаться")
	assert.Equal(t, "8080", cfg.Port, "Порт по умолчанию должен быть 8080")
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins, "По умолчанию разрешаются все origin")
	assert.Empty(t, cfg.RedisAddr, "Redis по умолчанию не настроен")
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "test-key", cfg.GeocodingKey)
}

func TestLoadAllowedOriginsList(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://ftf-frontend.vercel.app, https://example.com")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t,
		[]string{"https://ftf-frontend.vercel.app", "https://example.com"},
		cfg.AllowedOrigins,
		"Список origin должен разбираться по запятой с обрезкой пробелов")
}

func TestLoadRequiresGeocodingKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_GEOCODING_KEY", "")

	_, err := Load()
	assert.Error(t, err, "Без ключа геокодера конфигурация не должна загружаться")
}

func TestLoadRequiresDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.Error(t, err, "Без параметров базы конфигурация не должна загружаться")
}

func TestLoadRequiresJWTSecrets(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	assert.Error(t, err, "Без JWT секретов конфигурация не должна загружаться")
}
