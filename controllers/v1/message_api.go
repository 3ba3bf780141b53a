package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"recruit-backend/controllers"
	"recruit-backend/lib/message"
	ratelimit "recruit-backend/lib/rate-limit"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/middleware"
	apimodels "recruit-backend/models/api"
	messageapimodels "recruit-backend/models/api/message"
)

type messageApiController struct {
	controllers.BaseAPIController
}

func InitMessageApiRouters(app *fiber.App, limiter *ratelimit.Limiter) {
	controller := messageApiController{}
	app.Route("messages", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("threads", controller.threads)
		router.Get("threads/:id", controller.thread)
		router.Post("", middleware.RateLimit(limiter, "messages"), controller.send)
		router.Put("read", controller.markRead)
		router.Get("unread-count", controller.unreadCount)
	})
}

// @Summary Список переписок
// @Tags Сообщения
// @Description Сотрудник видит переписки тенанта, соискатель - свои
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   keyword          		query    string  				    	false         "имя соискателя или название вакансии"
// @Success 200 {object} apimodels.Response{data=[]messageapimodels.ThreadView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/messages/threads [get]
func (c *messageApiController) threads(ctx *fiber.Ctx) error {
	var filter messageapimodels.ThreadFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := message.Instance.ListThreads(authutils.GetUser(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка переписок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Переписка по отклику
// @Tags Сообщения
// @Description Сообщения переписки по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "ID отклика"
// @Success 200 {object} apimodels.Response{data=messageapimodels.ThreadDetail}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/messages/threads/{id} [get]
func (c *messageApiController) thread(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := message.Instance.GetThread(authutils.GetUser(ctx), applicationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения переписки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отправка сообщения
// @Tags Сообщения
// @Description Отправка сообщения в переписку по отклику
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	messageapimodels.SendMessage	true	"request body"
// @Success 200 {object} apimodels.Response{data=messageapimodels.MessageView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 429 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/messages [post]
func (c *messageApiController) send(ctx *fiber.Ctx) error {
	var payload messageapimodels.SendMessage
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := message.Instance.Send(authutils.GetUser(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отправки сообщения")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отметить прочитанными
// @Tags Сообщения
// @Description Отмечаются только сообщения доступных пользователю переписок
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	messageapimodels.MarkRead	true	"request body"
// @Success 200 {object} apimodels.Response{data=int}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/messages/read [put]
func (c *messageApiController) markRead(ctx *fiber.Ctx) error {
	var payload messageapimodels.MarkRead
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	updated, err := message.Instance.MarkRead(authutils.GetUser(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отметки сообщений прочитанными")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(updated))
}

// @Summary Количество непрочитанных
// @Tags Сообщения
// @Description Количество непрочитанных сообщений
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=messageapimodels.UnreadCount}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/messages/unread-count [get]
func (c *messageApiController) unreadCount(ctx *fiber.Ctx) error {
	count, err := message.Instance.UnreadCount(authutils.GetUser(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения количества непрочитанных сообщений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(messageapimodels.UnreadCount{Count: count}))
}
