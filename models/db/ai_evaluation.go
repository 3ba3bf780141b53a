package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"recruit-backend/models"
	"time"
)

// Breakdown оценки по критериям, каждая 0-100
type Breakdown struct {
	SkillMatch      int `json:"skillMatch"`
	Experience      int `json:"experience"`
	Education       int `json:"education"`
	Motivation      int `json:"motivation"`
	ResponseQuality int `json:"responseQuality"`
}

func (b Breakdown) Value() (driver.Value, error) {
	valueString, err := json.Marshal(b)
	return string(valueString), err
}

func (b *Breakdown) Scan(value interface{}) error {
	return scanJSON(value, b)
}

// UniformBreakdown все критерии равны общей оценке
func UniformBreakdown(score int) Breakdown {
	return Breakdown{
		SkillMatch:      score,
		Experience:      score,
		Education:       score,
		Motivation:      score,
		ResponseQuality: score,
	}
}

type AiEvaluation struct {
	BaseModel
	ApplicationID string        `gorm:"type:varchar(36);uniqueIndex"`
	Rank          models.AIRank `gorm:"type:varchar(1);index"`
	Score         int
	Breakdown     Breakdown `gorm:"type:jsonb"`
	AiComment     string    `gorm:"type:text"`
	IsFallback    bool      // упрощенная оценка без ИИ
	EvaluatedAt   time.Time
}
