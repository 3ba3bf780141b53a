package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	authutils "recruit-backend/lib/utils/auth-utils"
)

func TestSendError(t *testing.T) {
	c := BaseAPIController{}
	app := fiber.New()
	app.Get("/:kind", func(ctx *fiber.Ctx) error {
		var err error
		switch ctx.Params("kind") {
		case "not-found":
			err = errors.Wrap(authutils.ErrNotFound, "отклик")
		case "forbidden":
			err = authutils.ErrForbidden
		default:
			err = errors.New("db down")
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка")
	})

	for path, status := range map[string]int{
		"/not-found": fiber.StatusNotFound,
		"/forbidden": fiber.StatusForbidden,
		"/other":     fiber.StatusInternalServerError,
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.Nil(t, err)
		require.Equal(t, status, resp.StatusCode, path)
	}
}
