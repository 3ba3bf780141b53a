package fallback

import (
	"unicode/utf8"

	"recruit-backend/lib/ai/rank"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
)

const (
	minScore = 40
	maxScore = 80
	// символов ответа на один балл сверх минимума
	charsPerPoint = 10

	Comment = "AIサービスが一時的に利用できないため、簡易評価を実施しました。"
)

type Result struct {
	Rank      models.AIRank
	Score     int
	Breakdown dbmodels.Breakdown
	AiComment string
}

// Score упрощенная оценка по суммарной длине ответов: чем подробнее ответы, тем выше балл
func Score(formData map[string]string) int {
	total := 0
	for _, answer := range formData {
		total += utf8.RuneCountInString(answer)
	}
	score := total/charsPerPoint + minScore
	if score > maxScore {
		return maxScore
	}
	return score
}

// Evaluate оценка без обращения к ИИ
func Evaluate(formData map[string]string, thresholds dbmodels.Thresholds) Result {
	score := Score(formData)
	return Result{
		Rank:      rank.Classify(score, thresholds),
		Score:     score,
		Breakdown: dbmodels.UniformBreakdown(score),
		AiComment: Comment,
	}
}
