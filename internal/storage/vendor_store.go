package storage

import (
	"context"

	"food_truck_finder/internal/models"

	"gorm.io/gorm"
)

// VendorStore — gorm-репозиторий аккаунтов вендоров.
type VendorStore struct {
	db *gorm.DB
}

func NewVendorStore(db *gorm.DB) *VendorStore {
	return &VendorStore{db: db}
}

func (s *VendorStore) Create(ctx context.Context, vendor *models.Vendor) error {
	return s.db.WithContext(ctx).Create(vendor).Error
}

func (s *VendorStore) FindByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *VendorStore) FindByID(ctx context.Context, id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.WithContext(ctx).First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}
