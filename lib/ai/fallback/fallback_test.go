package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
)

func TestFallback(t *testing.T) {
	t.Run(`score bounds`, func(t *testing.T) {
		require.Equal(t, 40, Score(nil))
		require.Equal(t, 40, Score(map[string]string{}))
		require.Equal(t, 40, Score(map[string]string{"q": "123456789"}))
		require.Equal(t, 41, Score(map[string]string{"q": "1234567890"}))
		require.Equal(t, 80, Score(map[string]string{"q": strings.Repeat("a", 400)}))
		require.Equal(t, 80, Score(map[string]string{"q": strings.Repeat("a", 5000)}))
	})

	t.Run(`answers are summed`, func(t *testing.T) {
		formData := map[string]string{
			"motivation": strings.Repeat("a", 120),
			"experience": strings.Repeat("b", 130),
		}
		require.Equal(t, 65, Score(formData))
	})

	t.Run(`length counted in characters`, func(t *testing.T) {
		// 30 символов, 90 байт
		formData := map[string]string{"志望動機": strings.Repeat("頑張ります", 6)}
		require.Equal(t, 43, Score(formData))
	})

	t.Run(`evaluate`, func(t *testing.T) {
		formData := map[string]string{"q": strings.Repeat("a", 150)}
		result := Evaluate(formData, dbmodels.DefaultThresholds())
		require.Equal(t, 55, result.Score)
		require.Equal(t, models.AIRankB, result.Rank)
		require.Equal(t, dbmodels.UniformBreakdown(55), result.Breakdown)
		require.Equal(t, "AIサービスが一時的に利用できないため、簡易評価を実施しました。", result.AiComment)

		empty := Evaluate(nil, dbmodels.DefaultThresholds())
		require.Equal(t, 40, empty.Score)
		require.Equal(t, models.AIRankC, empty.Rank)
	})

	t.Run(`never ranks S with default thresholds`, func(t *testing.T) {
		result := Evaluate(map[string]string{"q": strings.Repeat("a", 10000)}, dbmodels.DefaultThresholds())
		require.Equal(t, 80, result.Score)
		require.Equal(t, models.AIRankA, result.Rank)
	})
}
