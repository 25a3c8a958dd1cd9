package response

// ErrorResponse представляет ответ с ошибкой API.
// Контракт фронтенда — единственная человекочитаемая строка message.
type ErrorResponse struct {
	Message string `json:"message" example:"Could not geocode the provided location address. Check address formatting."`
}

// SuccessResponse представляет успешный ответ API без данных
type SuccessResponse struct {
	Message string `json:"message" example:"Vendor registered successfully."`
}

// TokenResponse представляет ответ с токенами авторизации
type TokenResponse struct {
	// JWT токен для доступа к защищенным эндпоинтам
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// JWT токен для обновления access токена
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}
