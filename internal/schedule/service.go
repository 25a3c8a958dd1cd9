package schedule

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"food_truck_finder/internal/geocode"
	"food_truck_finder/internal/models"
)

// ErrGeocodeFailed возвращается, когда адрес не удалось разрешить в координаты —
// как при пустом ответе провайдера, так и при сбое самого вызова. Для клиента
// эти случаи неразличимы, детали сбоя остаются в логе сервера.
var ErrGeocodeFailed = errors.New("could not geocode address")

// ValidationError перечисляет обязательные поля, отсутствующие во входных данных.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Store — персистентность записей расписания.
type Store interface {
	Insert(ctx context.Context, entry *models.Schedule) error
	ListByDate(ctx context.Context, date string) ([]models.Schedule, error)
	ListAll(ctx context.Context) ([]models.Schedule, error)
	ListByVendor(ctx context.Context, vendorID uint) ([]models.Schedule, error)
}

// Service проверяет входные данные вендора, геокодирует адрес и сохраняет запись.
type Service struct {
	store    Store
	geocoder geocode.Geocoder
}

func NewService(store Store, geocoder geocode.Geocoder) *Service {
	return &Service{store: store, geocoder: geocoder}
}

// CreateInput — данные формы вендора. Пустые menu_link/instagram_link
// сохраняются как NULL.
type CreateInput struct {
	Title         string
	Date          string
	Time          string
	Location      string
	SocialLink    string
	MenuLink      string
	InstagramLink string

	// VendorID заполняется, если запись создаёт авторизованный вендор.
	VendorID *uint
}

// Create создаёт запись расписания: валидация, геокодирование, вставка.
// Запись без координат никогда не сохраняется — геокодирование обязательный шаг.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Schedule, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"date", in.Date},
		{"time", in.Time},
		{"location", in.Location},
		{"social_link", in.SocialLink},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	coords, err := s.geocoder.Geocode(ctx, in.Location)
	if err != nil {
		log.Println("Ошибка вызова геокодера:", err)
		return nil, ErrGeocodeFailed
	}
	if coords == nil {
		return nil, ErrGeocodeFailed
	}

	entry := &models.Schedule{
		Title:         in.Title,
		Date:          in.Date,
		Time:          in.Time,
		Location:      in.Location,
		Latitude:      coords.Latitude,
		Longitude:     coords.Longitude,
		SocialLink:    in.SocialLink,
		MenuLink:      optionalLink(in.MenuLink),
		InstagramLink: optionalLink(in.InstagramLink),
		VendorID:      in.VendorID,
	}

	if err := s.store.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("сохранение записи расписания: %w", err)
	}

	return entry, nil
}

// List возвращает записи на указанную дату (YYYY-MM-DD); пустая дата
// означает сегодняшний день по локальному календарю сервера.
func (s *Service) List(ctx context.Context, date string) ([]models.Schedule, error) {
	if date == "" {
		date = Today()
	}

	entries, err := s.store.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("выборка расписаний на %s: %w", date, err)
	}
	if entries == nil {
		entries = []models.Schedule{}
	}
	return entries, nil
}

// ListAll возвращает все записи, отсортированные по дате и времени.
func (s *Service) ListAll(ctx context.Context) ([]models.Schedule, error) {
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("выборка всех расписаний: %w", err)
	}
	if entries == nil {
		entries = []models.Schedule{}
	}
	return entries, nil
}

// ListByVendor возвращает записи, созданные вендором.
func (s *Service) ListByVendor(ctx context.Context, vendorID uint) ([]models.Schedule, error) {
	entries, err := s.store.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("выборка расписаний вендора %d: %w", vendorID, err)
	}
	if entries == nil {
		entries = []models.Schedule{}
	}
	return entries, nil
}

// Today — сегодняшняя дата сервера в формате YYYY-MM-DD.
func Today() string {
	return time.Now().Format("2006-01-02")
}

func optionalLink(link string) *string {
	if strings.TrimSpace(link) == "" {
		return nil
	}
	return &link
}
