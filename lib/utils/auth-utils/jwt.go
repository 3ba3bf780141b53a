package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"recruit-backend/config"
	"recruit-backend/models"
)

// GetToken выпуск токена для сервисных вызовов и тестов, вход пользователей выполняется внешним сервисом
func GetToken(userID, name, tenantID string, role models.UserRole) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":   name,
		"sub":    userID,
		"tenant": tenantID,
		"role":   string(role),
		"exp":    time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":    time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetStringClaim(claims jwt.MapClaims, key string) string {
	if value, exist := claims[key]; exist {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

func GetUser(ctx *fiber.Ctx) User {
	claims := GetClaims(ctx)
	return User{
		ID:       GetStringClaim(claims, "sub"),
		Name:     GetStringClaim(claims, "name"),
		TenantID: GetStringClaim(claims, "tenant"),
		Role:     models.UserRole(GetStringClaim(claims, "role")),
	}
}
