package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"food_truck_finder/internal/models"
	"food_truck_finder/internal/response"
	"food_truck_finder/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const scheduleCacheTTL = 5 * time.Minute

// ScheduleHandler обслуживает создание и выдачу записей расписания.
// cache может быть nil — тогда списки отдаются напрямую из базы.
type ScheduleHandler struct {
	service *schedule.Service
	cache   *redis.Client
}

func NewScheduleHandler(service *schedule.Service, cache *redis.Client) *ScheduleHandler {
	return &ScheduleHandler{service: service, cache: cache}
}

type CreateScheduleRequest struct {
	Title         string `json:"title" example:"Taco Cart"`
	Date          string `json:"date" example:"2025-06-01"`
	Time          string `json:"time" example:"11:00 AM - 2:00 PM"`
	Location      string `json:"location" example:"200 E 24th St, Cheyenne, WY"`
	SocialLink    string `json:"social_link" example:"https://fb.com/tacocart"`
	MenuLink      string `json:"menu_link,omitempty" example:"https://tacocart.com/menu"`
	InstagramLink string `json:"instagram_link,omitempty" example:"https://instagram.com/tacocart"`
}

// @Summary		Создание записи расписания
// @Description	Валидирует данные вендора, геокодирует адрес и сохраняет запись. При наличии валидного Bearer токена запись привязывается к вендору.
// @Tags			schedules
// @Accept			json
// @Produce		json
// @Param			schedule	body		CreateScheduleRequest	true	"Данные записи"
// @Success		201			{object}	models.Schedule			"Созданная запись с координатами"
// @Failure		400			{object}	response.ErrorResponse	"Не заполнены обязательные поля или адрес не геокодируется"
// @Failure		500			{object}	response.ErrorResponse	"Ошибка сохранения в базу"
// @Router			/api/v1/schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Message: "Invalid request body.",
		})
		return
	}

	input := schedule.CreateInput{
		Title:         req.Title,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		SocialLink:    req.SocialLink,
		MenuLink:      req.MenuLink,
		InstagramLink: req.InstagramLink,
	}

	// Привязка к вендору, если OptionalMiddleware распознал токен.
	if id, ok := c.Get("vendorID"); ok {
		if vendorID, ok := id.(uint); ok {
			input.VendorID = &vendorID
		}
	}

	entry, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		var ve *schedule.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Message: "Missing required fields: " + strings.Join(ve.Missing, ", ") + ".",
			})
		case errors.Is(err, schedule.ErrGeocodeFailed):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Message: "Could not geocode the provided location address. Check address formatting.",
			})
		default:
			log.Println("Ошибка создания записи расписания:", err)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Message: "Error saving schedule to the database.",
			})
		}
		return
	}

	h.invalidateCache(c, entry.Date)

	c.JSON(http.StatusCreated, entry)
}

// @Summary		Список записей расписания
// @Description	Возвращает записи на указанную дату (по умолчанию — сегодня). С параметром all=true возвращает все записи, отсортированные по дате и времени.
// @Tags			schedules
// @Accept			json
// @Produce		json
// @Param			date	query		string	false	"Дата в формате YYYY-MM-DD"
// @Param			all		query		string	false	"all=true — все записи без фильтра по дате"
// @Success		200		{array}		models.Schedule			"Записи расписания (пустой массив, если ничего не найдено)"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка чтения из базы"
// @Router			/api/v1/schedules [get]
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	all := c.Query("all")

	var cacheKey string
	var fetch func() ([]models.Schedule, error)

	if all == "true" || all == "1" {
		cacheKey = "schedules_all"
		fetch = func() ([]models.Schedule, error) {
			return h.service.ListAll(c.Request.Context())
		}
	} else {
		date := c.Query("date")
		if date == "" {
			date = schedule.Today()
		}
		cacheKey = "schedules_" + date
		fetch = func() ([]models.Schedule, error) {
			return h.service.List(c.Request.Context(), date)
		}
	}

	// Проверка кэша
	if h.cache != nil {
		cached, err := h.cache.Get(c.Request.Context(), cacheKey).Result()
		if err == nil && cached != "" {
			var entries []models.Schedule
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				c.JSON(http.StatusOK, entries)
				return
			}
		}
	}

	entries, err := fetch()
	if err != nil {
		log.Println("Ошибка выборки расписаний:", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Message: "An internal server error occurred while fetching schedules.",
		})
		return
	}

	// Кэширование результата; сбой Redis не влияет на ответ.
	if h.cache != nil {
		if body, err := json.Marshal(entries); err == nil {
			h.cache.Set(c.Request.Context(), cacheKey, string(body), scheduleCacheTTL)
		}
	}

	c.JSON(http.StatusOK, entries)
}

// @Summary		Расписания текущего вендора
// @Description	Возвращает записи, созданные авторизованным вендором, отсортированные по дате и времени
// @Tags			schedules
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200	{array}		models.Schedule			"Записи вендора"
// @Failure		401	{object}	response.ErrorResponse	"Требуется авторизация"
// @Failure		500	{object}	response.ErrorResponse	"Ошибка чтения из базы"
// @Router			/api/v1/vendors/me/schedules [get]
func (h *ScheduleHandler) GetMySchedules(c *gin.Context) {
	vendorID := c.GetUint("vendorID")

	entries, err := h.service.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		log.Println("Ошибка выборки расписаний вендора:", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Message: "An internal server error occurred while fetching schedules.",
		})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// invalidateCache сбрасывает кэшированные списки, затронутые новой записью,
// чтобы она была видна сразу после создания.
func (h *ScheduleHandler) invalidateCache(c *gin.Context, date string) {
	if h.cache == nil {
		return
	}
	h.cache.Del(c.Request.Context(), "schedules_"+date, "schedules_all")
}
