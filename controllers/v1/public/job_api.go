package publicapi

import (
	"github.com/gofiber/fiber/v2"
	"recruit-backend/controllers"
	"recruit-backend/lib/job"
	apimodels "recruit-backend/models/api"
	jobapimodels "recruit-backend/models/api/job"
)

type publicJobApiController struct {
	controllers.BaseAPIController
}

func InitPublicJobApiRouters(app *fiber.App) {
	controller := publicJobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Опубликованные вакансии
// @Tags Публичные вакансии
// @Description Опубликованные вакансии всех компаний
// @Param   keyword          		query    string  				    	false         "поиск по названию и описанию"
// @Param   employment_type          		query    string  				    	false         "тип занятости"
// @Param   page          		query    int  				    	false         "страница"
// @Param   limit          		query    int  				    	false         "записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/jobs [get]
func (c *publicJobApiController) list(ctx *fiber.Ctx) error {
	var filter jobapimodels.JobFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := job.Instance.ListPublished(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка опубликованных вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Опубликованная вакансия
// @Tags Публичные вакансии
// @Description Опубликованная вакансия
// @Param   id          		path    string  				    	true         "ID вакансии"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/jobs/{id} [get]
func (c *publicJobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := job.Instance.GetPublished(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
