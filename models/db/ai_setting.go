package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"recruit-backend/models"
)

type Weights struct {
	SkillMatch      int `json:"skillMatch"`
	Experience      int `json:"experience"`
	Education       int `json:"education"`
	Motivation      int `json:"motivation"`
	ResponseQuality int `json:"responseQuality"`
}

func (w Weights) Value() (driver.Value, error) {
	valueString, err := json.Marshal(w)
	return string(valueString), err
}

func (w *Weights) Scan(value interface{}) error {
	return scanJSON(value, w)
}

func (w Weights) Sum() int {
	return w.SkillMatch + w.Experience + w.Education + w.Motivation + w.ResponseQuality
}

func (w Weights) HasNegative() bool {
	return w.SkillMatch < 0 || w.Experience < 0 || w.Education < 0 || w.Motivation < 0 || w.ResponseQuality < 0
}

type Thresholds struct {
	S int `json:"s"`
	A int `json:"a"`
	B int `json:"b"`
}

func (t Thresholds) Value() (driver.Value, error) {
	valueString, err := json.Marshal(t)
	return string(valueString), err
}

func (t *Thresholds) Scan(value interface{}) error {
	return scanJSON(value, t)
}

// IsOrdered s > a > b
func (t Thresholds) IsOrdered() bool {
	return t.S > t.A && t.A > t.B
}

type RequiredSkills []string

func (r RequiredSkills) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	valueString, err := json.Marshal(r)
	return string(valueString), err
}

func (r *RequiredSkills) Scan(value interface{}) error {
	return scanJSON(value, r)
}

// AutoActions действие по рангу, например S -> "INTERVIEW"
type AutoActions map[models.AIRank]string

func (a AutoActions) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	valueString, err := json.Marshal(a)
	return string(valueString), err
}

func (a *AutoActions) Scan(value interface{}) error {
	return scanJSON(value, a)
}

type AISetting struct {
	BaseTenantModel
	JobID          *string        `gorm:"type:varchar(36);index"`
	Weights        Weights        `gorm:"type:jsonb"`
	Thresholds     Thresholds     `gorm:"type:jsonb"`
	RequiredSkills RequiredSkills `gorm:"type:jsonb"`
	AutoActions    AutoActions    `gorm:"type:jsonb"`
}

func DefaultWeights() Weights {
	return Weights{
		SkillMatch:      40,
		Experience:      25,
		Education:       15,
		Motivation:      10,
		ResponseQuality: 10,
	}
}

func DefaultThresholds() Thresholds {
	return Thresholds{S: 85, A: 70, B: 50}
}

// DefaultAISetting настройки, если у тенанта ничего не сохранено
func DefaultAISetting(tenantID string) AISetting {
	rec := AISetting{
		Weights:        DefaultWeights(),
		Thresholds:     DefaultThresholds(),
		RequiredSkills: RequiredSkills{},
		AutoActions:    AutoActions{},
	}
	rec.TenantID = tenantID
	return rec
}
