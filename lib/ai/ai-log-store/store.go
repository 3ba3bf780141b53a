package ailogstore

import (
	dbmodels "recruit-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.AiLog) (string, error)
	ListByApplication(tenantID, applicationID string) ([]dbmodels.AiLog, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.AiLog) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByApplication(tenantID, applicationID string) (list []dbmodels.AiLog, err error) {
	err = i.db.
		Scopes(dbmodels.TenantScope(tenantID)).
		Where("application_id = ?", applicationID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
