package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	ratelimit "recruit-backend/lib/rate-limit"
	apimodels "recruit-backend/models/api"
)

// RateLimit фиксированное окно на ключ prefix:пользователь, без токена - prefix:ip
func RateLimit(storage *ratelimit.Limiter, prefix string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        storage.Limit(),
		Expiration: storage.Window(),
		Storage:    storage,
		KeyGenerator: func(ctx *fiber.Ctx) string {
			key := GetUserID(ctx)
			if key == "" {
				key = ctx.IP()
			}
			return prefix + ":" + key
		},
		LimitReached: func(ctx *fiber.Ctx) error {
			ctx.Set("X-RateLimit-Remaining", "0")
			return ctx.Status(fiber.StatusTooManyRequests).JSON(apimodels.NewError("リクエストが多すぎます。しばらくしてから再度お試しください"))
		},
	})
}
