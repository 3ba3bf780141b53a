package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruit-backend/controllers"
	aisettings "recruit-backend/lib/ai-settings"
	"recruit-backend/lib/ai/evaluation"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/middleware"
	apimodels "recruit-backend/models/api"
	aiapimodels "recruit-backend/models/api/ai"
)

type aiApiController struct {
	controllers.BaseAPIController
}

func InitAiApiRouters(app *fiber.App) {
	controller := aiApiController{}
	app.Route("ai", func(router fiber.Router) {
		router.Post("evaluate", controller.evaluate)
		router.Route("settings", func(settingsRoute fiber.Router) {
			settingsRoute.Get("", controller.getSettings)
			settingsRoute.Put("", middleware.TenantAdminRequired(), controller.saveSettings)
		})
	})
}

// @Summary Оценка отклика
// @Tags ИИ
// @Description Повторная оценка отклика ИИ, выполняется синхронно
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 aiapimodels.EvaluateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.EvaluationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/ai/evaluate [post]
func (c *aiApiController) evaluate(ctx *fiber.Ctx) error {
	var payload aiapimodels.EvaluateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	user := authutils.GetUser(ctx)
	resp, err := evaluation.Instance.Evaluate(ctx.UserContext(), user, payload.ApplicationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx).WithField("application_id", payload.ApplicationID), err, "Ошибка оценки отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Настройки ИИ оценки
// @Tags ИИ
// @Description Настройки тенанта или вакансии (job_id), если не заданы - значения по умолчанию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   job_id          		query    string  				    	false         "ID вакансии"
// @Success 200 {object} apimodels.Response{data=aiapimodels.AISettingView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/ai/settings [get]
func (c *aiApiController) getSettings(ctx *fiber.Ctx) error {
	tenantID := middleware.GetUserTenant(ctx)
	resp, err := aisettings.Instance.Get(tenantID, c.getJobID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения настроек ИИ оценки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранение настроек ИИ оценки
// @Tags ИИ
// @Description Сумма весов должна быть 100, пороги s > a > b
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   job_id          		query    string  				    	false         "ID вакансии"
// @Param	body body	 aiapimodels.AISettingData	true	"request body"
// @Success 200 {object} apimodels.Response{data=aiapimodels.AISettingView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/ai/settings [put]
func (c *aiApiController) saveSettings(ctx *fiber.Ctx) error {
	var payload aiapimodels.AISettingData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	resp, hMsg, err := aisettings.Instance.Save(tenantID, c.getJobID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения настроек ИИ оценки")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func (c *aiApiController) getJobID(ctx *fiber.Ctx) *string {
	jobID := ctx.Query("job_id")
	if jobID == "" {
		return nil
	}
	return &jobID
}
