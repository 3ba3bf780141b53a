package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
)

func GetUserTenant(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(authutils.GetClaims(ctx), "tenant")
}

func GetUserID(ctx *fiber.Ctx) string {
	return authutils.GetStringClaim(authutils.GetClaims(ctx), "sub")
}

func GetRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(authutils.GetStringClaim(authutils.GetClaims(ctx), "role"))
}

// StaffRequired сотрудник компании с привязкой к тенанту
func StaffRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetRole(ctx).IsStaff() || GetUserTenant(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("この操作を行う権限がありません"))
		}
		return ctx.Next()
	}
}

func TenantAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetRole(ctx).IsTenantAdmin() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("この操作を行う権限がありません"))
		}
		return ctx.Next()
	}
}

func JobSeekerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetRole(ctx) != models.JobSeekerRole || GetUserID(ctx) == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("求職者のみ利用できます"))
		}
		return ctx.Next()
	}
}
