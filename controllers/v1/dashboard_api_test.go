package apiv1

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"recruit-backend/lib/application"
	"recruit-backend/models"
	applicationapimodels "recruit-backend/models/api/application"
)

type fakeApplicationHandler struct {
	application.Provider
	tenantID string
}

func (f *fakeApplicationHandler) Dashboard(tenantID string) (*applicationapimodels.DashboardView, error) {
	f.tenantID = tenantID
	return &applicationapimodels.DashboardView{
		Stats: applicationapimodels.DashboardStats{NewCount: 3},
	}, nil
}

func TestDashboardApi(t *testing.T) {
	handler := &fakeApplicationHandler{}
	application.Instance = handler

	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{
			"sub":    "u1",
			"tenant": "tenant-1",
			"role":   string(models.TenantUserRole),
		}})
		return ctx.Next()
	})
	InitDashboardApiRouters(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil))
	require.Nil(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "tenant-1", handler.tenantID)

	var body struct {
		Status string                             `json:"status"`
		Data   applicationapimodels.DashboardView `json:"data"`
	}
	require.Nil(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "success", body.Status)
	require.Equal(t, int64(3), body.Data.Stats.NewCount)
}
