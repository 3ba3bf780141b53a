package aiapimodels

import (
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type AISettingData struct {
	Weights        dbmodels.Weights         `json:"weights"`         // веса критериев, в сумме 100
	Thresholds     dbmodels.Thresholds      `json:"thresholds"`      // пороги рангов s > a > b
	RequiredSkills []string                 `json:"required_skills"` // обязательные навыки
	AutoActions    map[models.AIRank]string `json:"auto_actions"`    // действие по рангу
}

func (r AISettingData) Validate() error {
	if r.Weights.HasNegative() {
		return errors.New("重みは0以上で指定してください")
	}
	if sum := r.Weights.Sum(); sum != 100 {
		return errors.Errorf("重みの合計は100である必要があります（現在: %d）", sum)
	}
	for _, v := range []int{r.Thresholds.S, r.Thresholds.A, r.Thresholds.B} {
		if v < 0 || v > 100 {
			return errors.New("閾値は0〜100で指定してください")
		}
	}
	if !r.Thresholds.IsOrdered() {
		return errors.New("閾値はS > A > Bの順で設定してください")
	}
	for rank := range r.AutoActions {
		if !rank.IsValid() {
			return errors.Errorf("不正なランク: %s", rank)
		}
	}
	for _, skill := range r.RequiredSkills {
		if strings.TrimSpace(skill) == "" {
			return errors.New("空のスキルは登録できません")
		}
	}
	return nil
}

type AISettingView struct {
	ID    string  `json:"id,omitempty"` // пусто, если настройки по умолчанию
	JobID *string `json:"job_id"`
	AISettingData
}

func AISettingConvert(rec dbmodels.AISetting) AISettingView {
	autoActions := map[models.AIRank]string{}
	for k, v := range rec.AutoActions {
		autoActions[k] = v
	}
	requiredSkills := []string{}
	requiredSkills = append(requiredSkills, rec.RequiredSkills...)
	return AISettingView{
		ID:    rec.ID,
		JobID: rec.JobID,
		AISettingData: AISettingData{
			Weights:        rec.Weights,
			Thresholds:     rec.Thresholds,
			RequiredSkills: requiredSkills,
			AutoActions:    autoActions,
		},
	}
}

type EvaluateRequest struct {
	ApplicationID string `json:"application_id"`
}

func (r EvaluateRequest) Validate() error {
	if strings.TrimSpace(r.ApplicationID) == "" {
		return errors.New("application_id は必須です")
	}
	return nil
}

type EvaluationView struct {
	ApplicationID string             `json:"application_id"`
	Rank          models.AIRank      `json:"rank"`
	Score         int                `json:"score"`
	Breakdown     dbmodels.Breakdown `json:"breakdown"`
	AiComment     string             `json:"ai_comment"`
	IsFallback    bool               `json:"is_fallback"`
	EvaluatedAt   time.Time          `json:"evaluated_at"`
}

func EvaluationConvert(rec dbmodels.AiEvaluation) EvaluationView {
	return EvaluationView{
		ApplicationID: rec.ApplicationID,
		Rank:          rec.Rank,
		Score:         rec.Score,
		Breakdown:     rec.Breakdown,
		AiComment:     rec.AiComment,
		IsFallback:    rec.IsFallback,
		EvaluatedAt:   rec.EvaluatedAt,
	}
}
