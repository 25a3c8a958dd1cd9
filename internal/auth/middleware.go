package auth

import (
	"net/http"
	"strings"

	"food_truck_finder/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Middleware проверяет валидность access токена и кладёт vendorID в контекст.
func Middleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{
				Message: "Authorization required.",
			})
			c.Abort()
			return
		}

		vendorID, ok := parseVendorID(authHeader, secret)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{
				Message: "Invalid or expired token.",
			})
			c.Abort()
			return
		}

		c.Set("vendorID", vendorID)
		c.Next()
	}
}

// OptionalMiddleware — вариант для публичных эндпоинтов: при валидном токене
// кладёт vendorID в контекст, при отсутствии или невалидном токене просто
// пропускает запрос дальше.
func OptionalMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if vendorID, ok := parseVendorID(authHeader, secret); ok {
				c.Set("vendorID", vendorID)
			}
		}
		c.Next()
	}
}

func parseVendorID(authHeader string, secret []byte) (uint, bool) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	vendorID, ok := claims["vendor_id"].(float64)
	if !ok {
		return 0, false
	}

	return uint(vendorID), true
}
