package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-backend/fiberlog"
	authutils "recruit-backend/lib/utils/auth-utils"
	apimodels "recruit-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("リクエストの形式が不正です")
	}
	return nil
}

func (c *BaseAPIController) QueryParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания параметров запроса")
		return errors.New("クエリパラメータが不正です")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := strings.TrimSpace(ctx.Params(key))
	if id == "" {
		return "", errors.New("IDが指定されていません")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	user := authutils.GetUser(ctx)
	logger := log.
		WithField("request_id", fiberlog.GetRequestID(ctx)).
		WithField("path", ctx.Path())
	if user.ID != "" {
		logger = logger.WithField("user_id", user.ID)
	}
	if user.TenantID != "" {
		logger = logger.WithField("tenant_id", user.TenantID)
	}
	return logger
}

// SendError ошибки доступа отдаются как 404/403, остальные логируются и отдаются как 500
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	switch {
	case errors.Is(err, authutils.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("データが見つかりません"))
	case errors.Is(err, authutils.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("アクセス権限がありません"))
	}
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("サーバーエラーが発生しました"))
}
