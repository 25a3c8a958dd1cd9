package geocode

import "context"

// Coordinates — широта и долгота в десятичных градусах.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder разрешает произвольный текстовый адрес в координаты.
// (nil, nil) означает, что провайдер не нашёл адрес; ошибка возвращается
// только при сбое самого вызова (таймаут, квота, авторизация).
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}
