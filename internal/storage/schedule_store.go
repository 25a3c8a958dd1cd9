package storage

import (
	"context"

	"food_truck_finder/internal/models"

	"gorm.io/gorm"
)

// ScheduleStore — gorm-репозиторий записей расписания.
type ScheduleStore struct {
	db *gorm.DB
}

func NewScheduleStore(db *gorm.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

// Insert сохраняет запись одним атомарным INSERT и проставляет ей ID.
func (s *ScheduleStore) Insert(ctx context.Context, entry *models.Schedule) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

// ListByDate возвращает записи с точным совпадением даты.
// Сортировка по колонке time лексикографическая: time хранится как строка
// для отображения, а не как время суток.
func (s *ScheduleStore) ListByDate(ctx context.Context, date string) ([]models.Schedule, error) {
	var entries []models.Schedule
	err := s.db.WithContext(ctx).
		Where("date = ?", date).
		Order("date, time").
		Find(&entries).Error
	return entries, err
}

// ListAll возвращает все записи, отсортированные по дате и времени.
func (s *ScheduleStore) ListAll(ctx context.Context) ([]models.Schedule, error) {
	var entries []models.Schedule
	err := s.db.WithContext(ctx).
		Order("date, time").
		Find(&entries).Error
	return entries, err
}

// ListByVendor возвращает записи, созданные указанным вендором.
func (s *ScheduleStore) ListByVendor(ctx context.Context, vendorID uint) ([]models.Schedule, error) {
	var entries []models.Schedule
	err := s.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("date, time").
		Find(&entries).Error
	return entries, err
}
