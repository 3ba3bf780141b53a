package evaluationstore

import (
	"github.com/pkg/errors"
	dbmodels "recruit-backend/models/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	// Upsert одна оценка на отклик, повторная оценка перезаписывает предыдущую
	Upsert(rec dbmodels.AiEvaluation) error
	GetByApplicationID(applicationID string) (*dbmodels.AiEvaluation, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Upsert(rec dbmodels.AiEvaluation) error {
	return i.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "application_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"rank", "score", "breakdown", "ai_comment", "is_fallback", "evaluated_at", "updated_at",
			}),
		}).
		Create(&rec).
		Error
}

func (i impl) GetByApplicationID(applicationID string) (rec *dbmodels.AiEvaluation, err error) {
	err = i.db.
		Where("application_id = ?", applicationID).
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
