package rank

import (
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
)

// Classify ранг по оценке, пороги сравниваются включительно
func Classify(score int, t dbmodels.Thresholds) models.AIRank {
	switch {
	case score >= t.S:
		return models.AIRankS
	case score >= t.A:
		return models.AIRankA
	case score >= t.B:
		return models.AIRankB
	default:
		return models.AIRankC
	}
}
