package jobstore

import (
	"strings"

	"github.com/pkg/errors"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	Update(tenantID, id string, updMap map[string]interface{}) error
	Delete(tenantID, id string) error
	GetByID(tenantID, id string) (*dbmodels.Job, error)
	// GetPublished вакансия для соискателя, без привязки к тенанту
	GetPublished(id string) (*dbmodels.Job, error)
	List(tenantID string, filter dbmodels.JobFilter) (list []dbmodels.Job, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.
		Omit("Tenant").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Job{}).
		Scopes(dbmodels.TenantScope(tenantID)).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) Delete(tenantID, id string) error {
	return i.db.
		Scopes(dbmodels.TenantScope(tenantID)).
		Where("id = ?", id).
		Delete(&dbmodels.Job{}).
		Error
}

func (i impl) GetByID(tenantID, id string) (rec *dbmodels.Job, err error) {
	err = i.db.
		Preload("Tenant").
		Scopes(dbmodels.TenantScope(tenantID)).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetPublished(id string) (rec *dbmodels.Job, err error) {
	err = i.db.
		Preload("Tenant").
		Where("id = ?", id).
		Where("status = ?", models.JobStatusPublished).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// List tenantID пустой - по всем тенантам (публичный список)
func (i impl) List(tenantID string, filter dbmodels.JobFilter) (list []dbmodels.Job, rowCount int64, err error) {
	tx := i.db.Model(&dbmodels.Job{})
	if tenantID != "" {
		tx = tx.Scopes(dbmodels.TenantScope(tenantID))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.EmploymentType != "" {
		tx = tx.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		tx = tx.Where("(lower(title) like ? or lower(description) like ?)", keyword, keyword)
	}
	if err = tx.Count(&rowCount).Error; err != nil {
		return nil, 0, err
	}
	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	err = tx.
		Preload("Tenant").
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
