package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruit-backend/controllers"
	"recruit-backend/lib/application"
	"recruit-backend/middleware"
	apimodels "recruit-backend/models/api"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Get("dashboard", controller.get)
}

// @Summary Сводка по откликам
// @Tags Сводка
// @Description Счетчики откликов, динамика за 6 месяцев, распределение по рангам и последние 5 откликов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.DashboardView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/dashboard [get]
func (c *dashboardApiController) get(ctx *fiber.Ctx) error {
	view, err := application.Instance.Dashboard(middleware.GetUserTenant(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сводки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
