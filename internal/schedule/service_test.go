package schedule

import (
	"context"
	"errors"
	"sort"
	"testing"

	"food_truck_finder/internal/geocode"
	"food_truck_finder/internal/models"

	"github.com/stretchr/testify/assert"
)

// memStore — хранилище в памяти для тестов сервиса.
type memStore struct {
	entries []models.Schedule
	nextID  uint
	err     error
}

func (m *memStore) Insert(_ context.Context, entry *models.Schedule) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	entry.ID = m.nextID
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memStore) ListByDate(_ context.Context, date string) ([]models.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Schedule
	for _, e := range m.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sortEntries(out)
	return out, nil
}

func (m *memStore) ListAll(_ context.Context) ([]models.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := append([]models.Schedule(nil), m.entries...)
	sortEntries(out)
	return out, nil
}

func (m *memStore) ListByVendor(_ context.Context, vendorID uint) ([]models.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Schedule
	for _, e := range m.entries {
		if e.VendorID != nil && *e.VendorID == vendorID {
			out = append(out, e)
		}
	}
	sortEntries(out)
	return out, nil
}

// sortEntries повторяет ORDER BY date, time: сравнение строк, не времени суток.
func sortEntries(entries []models.Schedule) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].Time < entries[j].Time
	})
}

type fakeGeocoder struct {
	coords *geocode.Coordinates
	err    error
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) (*geocode.Coordinates, error) {
	return f.coords, f.err
}

func validInput() CreateInput {
	return CreateInput{
		Title:      "Taco Cart",
		Date:       "2025-06-01",
		Time:       "11:00 AM - 2:00 PM",
		Location:   "200 E 24th St, Cheyenne, WY",
		SocialLink: "https://fb.com/tacocart",
	}
}

func TestCreateScheduleSuccess(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, &fakeGeocoder{coords: &geocode.Coordinates{Latitude: 41.14, Longitude: -104.82}})

	entry, err := svc.Create(context.Background(), validInput())
	assert.NoError(t, err, "Создание корректной записи не должно падать")
	assert.NotZero(t, entry.ID, "Запись должна получить ID при вставке")
	assert.Equal(t, 41.14, entry.Latitude, "Широта должна браться из геокодера")
	assert.Equal(t, -104.82, entry.Longitude, "Долгота должна браться из геокодера")
	assert.Nil(t, entry.MenuLink, "Пустой menu_link должен сохраняться как NULL")
	assert.Nil(t, entry.InstagramLink, "Пустой instagram_link должен сохраняться как NULL")
	assert.Len(t, store.entries, 1, "В хранилище должна появиться одна запись")
}

func TestCreateScheduleMissingFields(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, &fakeGeocoder{coords: &geocode.Coordinates{Latitude: 1, Longitude: 1}})

	in := validInput()
	in.Title = ""
	in.SocialLink = "  "

	_, err := svc.Create(context.Background(), in)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve, "Ожидалась ошибка валидации")
	assert.Equal(t, []string{"title", "social_link"}, ve.Missing, "Должны перечисляться именно отсутствующие поля")
	assert.Empty(t, store.entries, "При ошибке валидации запись не должна сохраняться")
}

func TestCreateScheduleGeocodeNotFound(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, &fakeGeocoder{coords: nil})

	_, err := svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrGeocodeFailed, "Пустой ответ геокодера должен давать ErrGeocodeFailed")
	assert.Empty(t, store.entries, "Запись без координат не должна сохраняться")
}

func TestCreateScheduleProviderError(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, &fakeGeocoder{err: errors.New("quota exceeded")})

	_, err := svc.Create(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrGeocodeFailed, "Сбой провайдера должен давать тот же ErrGeocodeFailed")
	assert.Empty(t, store.entries, "При сбое геокодера запись не должна сохраняться")
}

func TestCreateScheduleStoreError(t *testing.T) {
	store := &memStore{err: errors.New("connection refused")}
	svc := NewService(store, &fakeGeocoder{coords: &geocode.Coordinates{Latitude: 1, Longitude: 1}})

	_, err := svc.Create(context.Background(), validInput())
	assert.Error(t, err, "Сбой хранилища должен возвращаться ошибкой")
	assert.NotErrorIs(t, err, ErrGeocodeFailed, "Сбой хранилища не должен маскироваться под ошибку геокодирования")
}

func TestCreateScheduleOptionalLinks(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, &fakeGeocoder{coords: &geocode.Coordinates{Latitude: 1, Longitude: 1}})

	in := validInput()
	in.MenuLink = "https://tacocart.com/menu"

	entry, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.NotNil(t, entry.MenuLink, "Заполненный menu_link должен сохраняться")
	assert.Equal(t, "https://tacocart.com/menu", *entry.MenuLink)
	assert.Nil(t, entry.InstagramLink, "Незаполненный instagram_link должен оставаться NULL")
}

func TestCreateScheduleVendorAttribution(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, &fakeGeocoder{coords: &geocode.Coordinates{Latitude: 1, Longitude: 1}})

	vendorID := uint(7)
	in := validInput()
	in.VendorID = &vendorID

	_, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)

	mine, err := svc.ListByVendor(context.Background(), vendorID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1, "Запись должна находиться по вендору")

	others, err := svc.ListByVendor(context.Background(), 8)
	assert.NoError(t, err)
	assert.Empty(t, others, "Чужой вендор не должен видеть запись среди своих")
}

func TestListDefaultsToToday(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, &fakeGeocoder{coords: &geocode.Coordinates{Latitude: 1, Longitude: 1}})

	today := Today()

	in := validInput()
	in.Date = today
	_, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)

	in = validInput()
	in.Date = "2020-01-01"
	in.Title = "Old Truck"
	_, err = svc.Create(context.Background(), in)
	assert.NoError(t, err)

	entries, err := svc.List(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, entries, 1, "Без даты должны возвращаться только сегодняшние записи")
	assert.Equal(t, today, entries[0].Date)
}

func TestListEmptyResultIsNotNil(t *testing.T) {
	svc := NewService(&memStore{}, &fakeGeocoder{})

	entries, err := svc.List(context.Background(), "2025-06-01")
	assert.NoError(t, err, "Пустой результат — не ошибка")
	assert.NotNil(t, entries, "Пустой результат должен быть пустым срезом, а не nil")
	assert.Empty(t, entries)
}

func TestListLexicographicTimeOrder(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, &fakeGeocoder{coords: &geocode.Coordinates{Latitude: 1, Longitude: 1}})

	first := validInput()
	first.Time = "9:00 AM - 1:00 PM"
	_, err := svc.Create(context.Background(), first)
	assert.NoError(t, err)

	second := validInput()
	second.Time = "11:00 AM - 2:00 PM"
	_, err = svc.Create(context.Background(), second)
	assert.NoError(t, err)

	entries, err := svc.List(context.Background(), "2025-06-01")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	// Сортировка по строке времени: "11:00..." идёт раньше "9:00...".
	assert.Equal(t, "11:00 AM - 2:00 PM", entries[0].Time)
	assert.Equal(t, "9:00 AM - 1:00 PM", entries[1].Time)
}

func TestCreateRoundTrip(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, &fakeGeocoder{coords: &geocode.Coordinates{Latitude: 41.14, Longitude: -104.82}})

	in := validInput()
	created, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)

	entries, err := svc.List(context.Background(), in.Date)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, in.Title, got.Title, "title должен читаться без изменений")
	assert.Equal(t, in.Date, got.Date, "date должен читаться без изменений")
	assert.Equal(t, in.Time, got.Time, "time должен читаться без изменений")
	assert.Equal(t, in.Location, got.Location, "location должен читаться без изменений")
	assert.Equal(t, in.SocialLink, got.SocialLink, "social_link должен читаться без изменений")
	assert.Equal(t, 41.14, got.Latitude)
	assert.Equal(t, -104.82, got.Longitude)
}
