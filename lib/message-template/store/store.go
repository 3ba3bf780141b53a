package messagetemplatestore

import (
	"errors"

	"gorm.io/gorm"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.MessageTemplate) (id string, err error)
	Update(tenantID, id string, updMap map[string]interface{}) error
	Delete(tenantID, id string) error
	GetByID(tenantID, id string) (rec *dbmodels.MessageTemplate, err error)
	List(tenantID string, filter dbmodels.MessageTemplateFilter) (list []dbmodels.MessageTemplate, err error)
	// GetActiveByRank активный шаблон ранга, rank nil - общий шаблон тенанта
	GetActiveByRank(tenantID string, rank *models.AIRank) (rec *dbmodels.MessageTemplate, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(tenantID, id string) (rec *dbmodels.MessageTemplate, err error) {
	err = i.db.
		Where("id = ?", id).
		Scopes(dbmodels.TenantScope(tenantID)).
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

func (i impl) Create(rec dbmodels.MessageTemplate) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(tenantID, id string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.MessageTemplate{}).
		Where("id = ?", id).
		Scopes(dbmodels.TenantScope(tenantID)).
		Updates(updMap).
		Error
}

func (i impl) Delete(tenantID, id string) error {
	return i.db.
		Where("id = ?", id).
		Scopes(dbmodels.TenantScope(tenantID)).
		Delete(&dbmodels.MessageTemplate{}).
		Error
}

func (i impl) List(tenantID string, filter dbmodels.MessageTemplateFilter) (list []dbmodels.MessageTemplate, err error) {
	tx := i.db.
		Model(&dbmodels.MessageTemplate{}).
		Scopes(dbmodels.TenantScope(tenantID))
	if filter.AllRank {
		tx = tx.Where("rank is null")
	} else if filter.Rank != nil {
		tx = tx.Where("rank = ?", *filter.Rank)
	}
	err = tx.
		Order("rank asc nulls last").
		Order("created_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetActiveByRank(tenantID string, rank *models.AIRank) (rec *dbmodels.MessageTemplate, err error) {
	tx := i.db.
		Scopes(dbmodels.TenantScope(tenantID)).
		Where("is_active = ?", true)
	if rank == nil {
		tx = tx.Where("rank is null")
	} else {
		tx = tx.Where("rank = ?", *rank)
	}
	err = tx.
		Order("created_at asc").
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
