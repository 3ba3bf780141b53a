package authutils

import (
	"github.com/pkg/errors"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
)

var (
	ErrNotFound  = errors.New("запись не найдена")
	ErrForbidden = errors.New("нет доступа")
)

// User пользователь из токена
type User struct {
	ID       string
	Name     string
	TenantID string
	Role     models.UserRole
}

func (u User) IsJobSeeker() bool {
	return u.Role == models.JobSeekerRole
}

// MessageScope сотрудник видит сообщения тенанта, соискатель - только свои
func (u User) MessageScope() dbmodels.MessageScope {
	if u.IsJobSeeker() {
		return dbmodels.MessageScope{JobSeekerID: u.ID}
	}
	return dbmodels.MessageScope{TenantID: u.TenantID}
}

// CheckTenant запись принадлежит тенанту пользователя, системный администратор видит все
func CheckTenant(user User, tenantID string) error {
	if user.Role.IsSystemAdmin() {
		return nil
	}
	if !user.Role.IsStaff() || user.TenantID == "" || user.TenantID != tenantID {
		return ErrForbidden
	}
	return nil
}

// CheckApplicationAccess отклик доступен сотруднику его тенанта или автору отклика
func CheckApplicationAccess(user User, application *dbmodels.Application) error {
	if application == nil {
		return ErrNotFound
	}
	if user.IsJobSeeker() {
		if application.JobSeekerID != user.ID {
			return ErrForbidden
		}
		return nil
	}
	return CheckTenant(user, application.TenantID)
}
