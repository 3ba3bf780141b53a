package aisettingsstore

import (
	"github.com/pkg/errors"
	dbmodels "recruit-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	// GetForJob настройки вакансии, если их нет - общие настройки тенанта
	GetForJob(tenantID, jobID string) (*dbmodels.AISetting, error)
	// Get точное совпадение, jobID nil - общие настройки тенанта
	Get(tenantID string, jobID *string) (*dbmodels.AISetting, error)
	Save(rec dbmodels.AISetting) (string, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetForJob(tenantID, jobID string) (rec *dbmodels.AISetting, err error) {
	err = i.db.
		Scopes(dbmodels.TenantScope(tenantID)).
		Where("job_id = ? or job_id is null", jobID).
		Order("job_id is null").
		Order("updated_at desc").
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

func (i impl) Get(tenantID string, jobID *string) (rec *dbmodels.AISetting, err error) {
	tx := i.db.
		Scopes(dbmodels.TenantScope(tenantID))
	if jobID == nil {
		tx = tx.Where("job_id is null")
	} else {
		tx = tx.Where("job_id = ?", *jobID)
	}
	err = tx.
		Order("updated_at desc").
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

func (i impl) Save(rec dbmodels.AISetting) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
