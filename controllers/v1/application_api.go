package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"recruit-backend/controllers"
	"recruit-backend/lib/application"
	ratelimit "recruit-backend/lib/rate-limit"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/middleware"
	apimodels "recruit-backend/models/api"
	applicationapimodels "recruit-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App, limiter *ratelimit.Limiter) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", middleware.JobSeekerRequired(), middleware.RateLimit(limiter, "applications"), controller.create)
		router.Get("me", middleware.JobSeekerRequired(), controller.listMine)
	})
}

// @Summary Отклик на вакансию
// @Tags Отклики
// @Description Отклик соискателя, оценка ИИ и автоответ выполняются в фоне
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	applicationapimodels.CreateApplication	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 429 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	var payload applicationapimodels.CreateApplication
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := application.Instance.Create(authutils.GetUser(ctx), payload)
	if err != nil {
		if errors.Is(err, application.ErrAlreadyApplied) {
			return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError("この求人には既に応募済みです"))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Мои отклики
// @Tags Отклики
// @Description Отклики соискателя с вакансией, компанией и рангом оценки, новые первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.MyApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applications/me [get]
func (c *applicationApiController) listMine(ctx *fiber.Ctx) error {
	list, err := application.Instance.ListMine(authutils.GetUser(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения откликов соискателя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
