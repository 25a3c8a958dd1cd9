package models

import (
	"time"

	"gorm.io/gorm"
)

// Vendor — аккаунт владельца фудтрака.
type Vendor struct {
	gorm.Model
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// Schedule — запись о выходе фудтрака: место, дата и время работы.
// Координаты всегда вычисляются геокодером при создании, клиент их не передаёт.
type Schedule struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Date          string    `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	Time          string    `gorm:"not null" json:"time"`       // строка для отображения, например "11:00 AM - 2:00 PM"
	Location      string    `gorm:"not null" json:"location"`
	Latitude      float64   `gorm:"not null" json:"latitude"`
	Longitude     float64   `gorm:"not null" json:"longitude"`
	SocialLink    string    `gorm:"not null" json:"social_link"`
	MenuLink      *string   `json:"menu_link"`
	InstagramLink *string   `json:"instagram_link"`
	VendorID      *uint     `gorm:"index" json:"vendor_id,omitempty"`
	CreatedAt     time.Time `json:"-"`
}
