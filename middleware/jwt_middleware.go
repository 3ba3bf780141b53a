package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"recruit-backend/config"
	apimodels "recruit-backend/models/api"
)

// AuthorizationRequired проверка Bearer токена, выпущенного сервисом авторизации
func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwt.SigningMethodHS256.Name,
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		TokenLookup:    "header:" + fiber.HeaderAuthorization,
		AuthScheme:     "Bearer",
		SuccessHandler: checkClaims,
		ErrorHandler:   authError,
	})
}

// checkClaims токен без пользователя или с неизвестной ролью не принимается
func checkClaims(ctx *fiber.Ctx) error {
	if GetUserID(ctx) == "" || !GetRole(ctx).IsValid() {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("認証情報が不正です"))
	}
	return ctx.Next()
}

func authError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("認証の有効期限が切れています"))
	}
	return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("認証が必要です"))
}
