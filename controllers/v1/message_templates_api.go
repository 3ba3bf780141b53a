package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruit-backend/controllers"
	messagetemplate "recruit-backend/lib/message-template"
	"recruit-backend/middleware"
	apimodels "recruit-backend/models/api"
	msgtemplateapimodels "recruit-backend/models/api/message-template"
)

type msgTemplateApiController struct {
	controllers.BaseAPIController
}

func InitMsgTemplateApiRouters(app *fiber.App) {
	controller := msgTemplateApiController{}
	app.Route("msg-templates", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Get("variables", controller.variables)
		router.Post("preview", controller.preview)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Put("", controller.update)
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Список шаблонов сообщений
// @Tags Шаблоны сообщений
// @Description Список шаблонов сообщений, rank=ALL - только общие шаблоны
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   rank          		query    string  				    	false         "S/A/B/C/ALL"
// @Success 200 {object} apimodels.Response{data=[]msgtemplateapimodels.MsgTemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/msg-templates/list [get]
func (c *msgTemplateApiController) list(ctx *fiber.Ctx) error {
	var filter msgtemplateapimodels.MsgTemplateFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	list, hMsg, err := messagetemplate.Instance.List(tenantID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка шаблонов")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание
// @Tags Шаблоны сообщений
// @Description Создание
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 msgtemplateapimodels.MsgTemplateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router  /api/v1/space/msg-templates [post]
func (c *msgTemplateApiController) create(ctx *fiber.Ctx) error {
	var payload msgtemplateapimodels.MsgTemplateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	id, err := messagetemplate.Instance.Create(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления шаблона сообщений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Переменные шаблона
// @Tags Шаблоны сообщений
// @Description Переменные шаблона
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]msgtemplateapimodels.TemplateItem}
// @Failure 403
// @router /api/v1/space/msg-templates/variables [get]
func (c *msgTemplateApiController) variables(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(messagetemplate.GetVariables()))
}

// @Summary Предпросмотр
// @Tags Шаблоны сообщений
// @Description Текст шаблона с примерными значениями переменных
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 msgtemplateapimodels.PreviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=msgtemplateapimodels.PreviewResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @router /api/v1/space/msg-templates/preview [post]
func (c *msgTemplateApiController) preview(ctx *fiber.Ctx) error {
	var payload msgtemplateapimodels.PreviewRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(msgtemplateapimodels.PreviewResponse{
		Body: messagetemplate.Preview(payload.Body),
	}))
}

// @Summary Обновление
// @Tags Шаблоны сообщений
// @Description Обновление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 msgtemplateapimodels.MsgTemplateData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/msg-templates/{id} [put]
func (c *msgTemplateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload msgtemplateapimodels.MsgTemplateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	tenantID := middleware.GetUserTenant(ctx)
	hMsg, err := messagetemplate.Instance.Update(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения шаблона сообщений")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Шаблоны сообщений
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=msgtemplateapimodels.MsgTemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/msg-templates/{id} [get]
func (c *msgTemplateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	tenantID := middleware.GetUserTenant(ctx)
	resp, err := messagetemplate.Instance.GetByID(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения шаблона сообщений")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("テンプレートが見つかりません"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Шаблоны сообщений
// @Description Удаление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/msg-templates/{id} [delete]
func (c *msgTemplateApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	tenantID := middleware.GetUserTenant(ctx)
	hMsg, err := messagetemplate.Instance.Delete(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления шаблона сообщений")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
