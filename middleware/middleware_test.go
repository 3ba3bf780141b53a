package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"recruit-backend/config"
	ratelimit "recruit-backend/lib/rate-limit"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/models"
)

func withClaims(claims jwt.MapClaims) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: claims})
		return ctx.Next()
	}
}

func ok(ctx *fiber.Ctx) error {
	return ctx.SendStatus(fiber.StatusOK)
}

func TestRoleGuards(t *testing.T) {
	t.Run(`staff guard`, func(t *testing.T) {
		app := fiber.New()
		app.Get("/staff", withClaims(jwt.MapClaims{"sub": "u1", "tenant": "t1", "role": string(models.TenantUserRole)}), StaffRequired(), ok)
		app.Get("/seeker", withClaims(jwt.MapClaims{"sub": "s1", "role": string(models.JobSeekerRole)}), StaffRequired(), ok)

		resp, err := app.Test(httptest.NewRequest("GET", "/staff", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest("GET", "/seeker", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
	t.Run(`tenant admin guard`, func(t *testing.T) {
		app := fiber.New()
		app.Get("/", withClaims(jwt.MapClaims{"sub": "u1", "tenant": "t1", "role": string(models.TenantUserRole)}), TenantAdminRequired(), ok)
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
	t.Run(`job seeker guard`, func(t *testing.T) {
		app := fiber.New()
		app.Get("/", withClaims(jwt.MapClaims{"sub": "s1", "role": string(models.JobSeekerRole)}), JobSeekerRequired(), ok)
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run(`429 after limit`, func(t *testing.T) {
		app := fiber.New()
		limiter := ratelimit.NewLimiter(2, time.Minute)
		app.Post("/", withClaims(jwt.MapClaims{"sub": "s1"}), RateLimit(limiter, "test"), ok)

		resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "1", resp.Header.Get("X-RateLimit-Remaining"))

		_, err = app.Test(httptest.NewRequest("POST", "/", nil))
		require.Nil(t, err)

		resp, err = app.Test(httptest.NewRequest("POST", "/", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
		require.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	})
	t.Run(`users and prefixes have separate windows`, func(t *testing.T) {
		app := fiber.New()
		limiter := ratelimit.NewLimiter(1, time.Minute)
		app.Post("/a/:user", func(ctx *fiber.Ctx) error {
			ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": ctx.Params("user")}})
			return ctx.Next()
		}, RateLimit(limiter, "application"), ok)
		app.Post("/m", withClaims(jwt.MapClaims{"sub": "s1"}), RateLimit(limiter, "message"), ok)

		call := func(path string) int {
			resp, err := app.Test(httptest.NewRequest("POST", path, nil))
			require.Nil(t, err)
			return resp.StatusCode
		}
		require.Equal(t, fiber.StatusOK, call("/a/s1"))
		require.Equal(t, fiber.StatusTooManyRequests, call("/a/s1"))
		require.Equal(t, fiber.StatusOK, call("/a/s2"))
		require.Equal(t, fiber.StatusOK, call("/m"))

		val, err := limiter.Get("application:s1")
		require.Nil(t, err)
		require.NotNil(t, val)
	})
}

func TestAuthorizationRequired(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60

	app := fiber.New()
	app.Get("/", AuthorizationRequired(), func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserTenant(ctx))
	})
	call := func(token string) int {
		req := httptest.NewRequest("GET", "/", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := app.Test(req)
		require.Nil(t, err)
		return resp.StatusCode
	}

	t.Run(`valid token`, func(t *testing.T) {
		token, err := authutils.GetToken("u1", "担当者", "t1", models.TenantUserRole)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, call(token))
	})
	t.Run(`missing token`, func(t *testing.T) {
		require.Equal(t, fiber.StatusUnauthorized, call(""))
	})
	t.Run(`unknown role`, func(t *testing.T) {
		token, err := authutils.GetToken("u1", "担当者", "t1", models.UserRole("GUEST"))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusUnauthorized, call(token))
	})
	t.Run(`foreign signature`, func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "role": string(models.JobSeekerRole)}).
			SignedString([]byte("other"))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusUnauthorized, call(token))
	})
}
