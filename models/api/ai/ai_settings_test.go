package aiapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
)

func TestAISettingDataValidate(t *testing.T) {
	valid := func() AISettingData {
		return AISettingData{
			Weights:        dbmodels.DefaultWeights(),
			Thresholds:     dbmodels.DefaultThresholds(),
			RequiredSkills: []string{"Go"},
			AutoActions:    map[models.AIRank]string{models.AIRankS: "INTERVIEW"},
		}
	}

	t.Run(`valid`, func(t *testing.T) {
		require.Nil(t, valid().Validate())
	})

	t.Run(`weights must sum to 100`, func(t *testing.T) {
		data := valid()
		data.Weights.SkillMatch = 50
		err := data.Validate()
		require.NotNil(t, err)
		require.Equal(t, "重みの合計は100である必要があります（現在: 110）", err.Error())
	})

	t.Run(`negative weight`, func(t *testing.T) {
		data := valid()
		data.Weights = dbmodels.Weights{SkillMatch: 110, Experience: -10}
		require.NotNil(t, data.Validate())
	})

	t.Run(`thresholds order`, func(t *testing.T) {
		data := valid()
		data.Thresholds = dbmodels.Thresholds{S: 70, A: 70, B: 50}
		require.NotNil(t, data.Validate())

		data.Thresholds = dbmodels.Thresholds{S: 101, A: 70, B: 50}
		require.NotNil(t, data.Validate())
	})

	t.Run(`unknown rank in auto actions`, func(t *testing.T) {
		data := valid()
		data.AutoActions = map[models.AIRank]string{"X": "REJECT"}
		require.NotNil(t, data.Validate())
	})
}
