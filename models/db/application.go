package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"recruit-backend/models"
	"sort"
	"time"
)

// FormData ответы соискателя из формы отклика: вопрос -> ответ
type FormData map[string]string

func (f FormData) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	valueString, err := json.Marshal(f)
	return string(valueString), err
}

func (f *FormData) Scan(value interface{}) error {
	return scanJSON(value, f)
}

// Keys ключи в стабильном порядке
func (f FormData) Keys() []string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

type Application struct {
	BaseTenantModel
	JobID       string                   `gorm:"type:varchar(36);uniqueIndex:idx_application_job_seeker"`
	Job         *Job                     `gorm:"foreignKey:JobID"`
	JobSeekerID string                   `gorm:"type:varchar(36);uniqueIndex:idx_application_job_seeker"`
	JobSeeker   *JobSeeker               `gorm:"foreignKey:JobSeekerID"`
	FormData    FormData                 `gorm:"type:jsonb"`
	Status      models.ApplicationStatus `gorm:"type:varchar(50);index;default:NEW"`
	AppliedAt   time.Time                `gorm:"index"`
	Evaluation  *AiEvaluation            `gorm:"foreignKey:ApplicationID"`
}

type ApplicationFilter struct {
	JobID  string
	Status models.ApplicationStatus
	Rank   models.AIRank
	Search string
	Page   int
	Limit  int
}

// ApplicationCountFilter пустые поля не ограничивают выборку, AppliedTo не включается
type ApplicationCountFilter struct {
	Status      models.ApplicationStatus
	AppliedFrom time.Time
	AppliedTo   time.Time
}
