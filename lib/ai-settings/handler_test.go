package aisettings

import (
	"testing"

	"github.com/stretchr/testify/require"
	aisettingsstore "recruit-backend/lib/ai-settings/store"
	dbmodels "recruit-backend/models/db"
)

type fakeSettingsStore struct {
	aisettingsstore.Provider
	rec *dbmodels.AISetting
}

func (f *fakeSettingsStore) GetForJob(tenantID, jobID string) (*dbmodels.AISetting, error) {
	return f.rec, nil
}

func TestNormalize(t *testing.T) {
	t.Run(`valid weights are kept`, func(t *testing.T) {
		w, changed := NormalizeWeights(dbmodels.DefaultWeights())
		require.False(t, changed)
		require.Equal(t, dbmodels.DefaultWeights(), w)
	})

	t.Run(`weights are scaled to 100`, func(t *testing.T) {
		w, changed := NormalizeWeights(dbmodels.Weights{SkillMatch: 50, Experience: 50, Education: 50, Motivation: 50, ResponseQuality: 50})
		require.True(t, changed)
		require.Equal(t, dbmodels.Weights{SkillMatch: 20, Experience: 20, Education: 20, Motivation: 20, ResponseQuality: 20}, w)

		w, changed = NormalizeWeights(dbmodels.Weights{SkillMatch: 1, Experience: 1, Education: 1})
		require.True(t, changed)
		require.Equal(t, 100, w.Sum())
		require.Equal(t, dbmodels.Weights{SkillMatch: 34, Experience: 33, Education: 33}, w)

		w, _ = NormalizeWeights(dbmodels.Weights{SkillMatch: 7, Experience: 3, Education: 2, Motivation: 1, ResponseQuality: 1})
		require.Equal(t, 100, w.Sum())
	})

	t.Run(`zero or negative weights fall back to defaults`, func(t *testing.T) {
		w, changed := NormalizeWeights(dbmodels.Weights{})
		require.True(t, changed)
		require.Equal(t, dbmodels.DefaultWeights(), w)

		w, changed = NormalizeWeights(dbmodels.Weights{SkillMatch: 120, Experience: -20})
		require.True(t, changed)
		require.Equal(t, dbmodels.DefaultWeights(), w)
	})

	t.Run(`thresholds`, func(t *testing.T) {
		th, changed := NormalizeThresholds(dbmodels.Thresholds{S: 90, A: 60, B: 30})
		require.False(t, changed)
		require.Equal(t, dbmodels.Thresholds{S: 90, A: 60, B: 30}, th)

		th, changed = NormalizeThresholds(dbmodels.Thresholds{S: 50, A: 70, B: 30})
		require.True(t, changed)
		require.Equal(t, dbmodels.DefaultThresholds(), th)

		th, changed = NormalizeThresholds(dbmodels.Thresholds{S: 120, A: 70, B: 30})
		require.True(t, changed)
		require.Equal(t, dbmodels.DefaultThresholds(), th)
	})
}

func TestGetEffective(t *testing.T) {
	t.Run(`no settings - defaults`, func(t *testing.T) {
		i := impl{store: &fakeSettingsStore{}}
		setting, err := i.GetEffective("tenant-1", "job-1")
		require.Nil(t, err)
		require.Equal(t, "tenant-1", setting.TenantID)
		require.Equal(t, dbmodels.DefaultWeights(), setting.Weights)
		require.Equal(t, dbmodels.DefaultThresholds(), setting.Thresholds)
		require.NotNil(t, setting.RequiredSkills)
	})

	t.Run(`stored settings are normalized`, func(t *testing.T) {
		rec := &dbmodels.AISetting{
			Weights:        dbmodels.Weights{SkillMatch: 80, Experience: 80, Education: 40},
			Thresholds:     dbmodels.Thresholds{S: 60, A: 60, B: 60},
			RequiredSkills: dbmodels.RequiredSkills{"Go"},
		}
		rec.TenantID = "tenant-1"
		i := impl{store: &fakeSettingsStore{rec: rec}}
		setting, err := i.GetEffective("tenant-1", "job-1")
		require.Nil(t, err)
		require.Equal(t, dbmodels.Weights{SkillMatch: 40, Experience: 40, Education: 20}, setting.Weights)
		require.Equal(t, dbmodels.DefaultThresholds(), setting.Thresholds)
		require.Equal(t, dbmodels.RequiredSkills{"Go"}, setting.RequiredSkills)
		// сохраненная запись не меняется
		require.Equal(t, 200, rec.Weights.Sum())
	})
}
