package handlers

import (
	"context"
	"net/http"
	"time"

	"food_truck_finder/internal/models"
	"food_truck_finder/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// VendorStore — персистентность аккаунтов вендоров.
type VendorStore interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	FindByEmail(ctx context.Context, email string) (*models.Vendor, error)
	FindByID(ctx context.Context, id uint) (*models.Vendor, error)
}

// AuthHandler обслуживает регистрацию и авторизацию вендоров.
type AuthHandler struct {
	store         VendorStore
	accessSecret  []byte
	refreshSecret []byte
}

func NewAuthHandler(store VendorStore, accessSecret, refreshSecret []byte) *AuthHandler {
	return &AuthHandler{
		store:         store,
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// @Summary		Регистрация вендора
// @Description	Регистрация нового владельца фудтрака
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			vendor	body		RegisterRequest				true	"Данные вендора"
// @Success		201		{object}	response.SuccessResponse	"Успешная регистрация"
// @Failure		400		{object}	response.ErrorResponse		"Ошибка валидации или email уже занят"
// @Failure		500		{object}	response.ErrorResponse		"Ошибка сервера"
// @Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Message: "Invalid registration data: name, email and password (6+ characters) are required.",
		})
		return
	}

	if _, err := h.store.FindByEmail(c.Request.Context(), req.Email); err == nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Message: "A vendor with this email already exists.",
		})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Message: "An internal server error occurred.",
		})
		return
	}

	vendor := models.Vendor{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := h.store.Create(c.Request.Context(), &vendor); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Message: "An internal server error occurred.",
		})
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{
		Message: "Vendor registered successfully.",
	})
}

// @Summary		Авторизация вендора
// @Description	Авторизация вендора и получение пары токенов
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			vendor	body		LoginRequest			true	"Данные для авторизации"
// @Success		200		{object}	response.TokenResponse	"Успешная авторизация"
// @Failure		400		{object}	response.ErrorResponse	"Ошибка валидации данных"
// @Failure		401		{object}	response.ErrorResponse	"Неверные учетные данные"
// @Failure		500		{object}	response.ErrorResponse	"Ошибка сервера"
// @Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Message: "Invalid login data: email and password are required.",
		})
		return
	}

	vendor, err := h.store.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Message: "Invalid email or password.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(vendor.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Message: "Invalid email or password.",
		})
		return
	}

	accessToken, err := generateToken(vendor.ID, time.Minute*15, h.accessSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Message: "An internal server error occurred.",
		})
		return
	}

	refreshToken, err := generateToken(vendor.ID, time.Hour*24*7, h.refreshSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Message: "An internal server error occurred.",
		})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// @Summary		Обновление access токена
// @Description	Обновление пары токенов с помощью refresh токена
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			refresh_token	body		RefreshTokenRequest		true	"Refresh токен"
// @Success		200				{object}	response.TokenResponse	"Успешное обновление токенов"
// @Failure		400				{object}	response.ErrorResponse	"Ошибка валидации данных"
// @Failure		401				{object}	response.ErrorResponse	"Неверный или просроченный refresh токен"
// @Failure		500				{object}	response.ErrorResponse	"Ошибка сервера"
// @Router			/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{
			Message: "Invalid request: refresh_token is required.",
		})
		return
	}

	token, err := jwt.Parse(req.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return h.refreshSecret, nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Message: "Invalid or expired refresh token.",
		})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Message: "Invalid or expired refresh token.",
		})
		return
	}

	vendorIDFloat, ok := claims["vendor_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Message: "Invalid or expired refresh token.",
		})
		return
	}

	vendorID := uint(vendorIDFloat)

	vendor, err := h.store.FindByID(c.Request.Context(), vendorID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{
			Message: "Vendor not found.",
		})
		return
	}

	newAccessToken, err := generateToken(vendor.ID, time.Minute*15, h.accessSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Message: "An internal server error occurred.",
		})
		return
	}

	newRefreshToken, err := generateToken(vendor.ID, time.Hour*24*7, h.refreshSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Message: "An internal server error occurred.",
		})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	})
}

func generateToken(vendorID uint, duration time.Duration, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"vendor_id": vendorID,
		"exp":       time.Now().Add(duration).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
