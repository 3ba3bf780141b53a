package jobseekerstore

import (
	"github.com/pkg/errors"
	dbmodels "recruit-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	GetByID(id string) (*dbmodels.JobSeeker, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (rec *dbmodels.JobSeeker, err error) {
	err = i.db.
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
