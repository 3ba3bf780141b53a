package aisettings

import (
	"recruit-backend/db"
	aisettingsstore "recruit-backend/lib/ai-settings/store"
	jobstore "recruit-backend/lib/job/store"
	aiapimodels "recruit-backend/models/api/ai"
	dbmodels "recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// GetEffective настройки для оценки отклика: вакансия -> тенант -> по умолчанию, всегда корректные
	GetEffective(tenantID, jobID string) (dbmodels.AISetting, error)
	Get(tenantID string, jobID *string) (aiapimodels.AISettingView, error)
	Save(tenantID string, jobID *string, data aiapimodels.AISettingData) (view aiapimodels.AISettingView, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    aisettingsstore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    aisettingsstore.Provider
	jobStore jobstore.Provider
}

func (i impl) GetEffective(tenantID, jobID string) (dbmodels.AISetting, error) {
	logger := log.WithFields(log.Fields{
		"tenant_id": tenantID,
		"job_id":    jobID,
	})
	rec, err := i.store.GetForJob(tenantID, jobID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения настроек ИИ оценки")
		return dbmodels.AISetting{}, errors.Wrap(err, "ошибка получения настроек ИИ оценки")
	}
	if rec == nil {
		return dbmodels.DefaultAISetting(tenantID), nil
	}
	setting := *rec
	var changed bool
	if setting.Weights, changed = NormalizeWeights(setting.Weights); changed {
		logger.
			WithField("setting_id", setting.ID).
			WithField("weights", rec.Weights).
			Warn("сумма весов ИИ оценки не равна 100, веса нормализованы")
	}
	if setting.Thresholds, changed = NormalizeThresholds(setting.Thresholds); changed {
		logger.
			WithField("setting_id", setting.ID).
			WithField("thresholds", rec.Thresholds).
			Warn("некорректные пороги рангов, используются пороги по умолчанию")
	}
	if setting.RequiredSkills == nil {
		setting.RequiredSkills = dbmodels.RequiredSkills{}
	}
	return setting, nil
}

func (i impl) Get(tenantID string, jobID *string) (aiapimodels.AISettingView, error) {
	rec, err := i.store.Get(tenantID, jobID)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithError(err).
			Error("ошибка получения настроек ИИ оценки")
		return aiapimodels.AISettingView{}, err
	}
	if rec == nil {
		def := dbmodels.DefaultAISetting(tenantID)
		def.JobID = jobID
		return aiapimodels.AISettingConvert(def), nil
	}
	return aiapimodels.AISettingConvert(*rec), nil
}

func (i impl) Save(tenantID string, jobID *string, data aiapimodels.AISettingData) (view aiapimodels.AISettingView, hMsg string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if jobID != nil {
		logger = logger.WithField("job_id", *jobID)
		job, err := i.jobStore.GetByID(tenantID, *jobID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения вакансии")
			return view, "", err
		}
		if job == nil {
			return view, "求人が見つかりません", nil
		}
	}
	rec, err := i.store.Get(tenantID, jobID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения настроек ИИ оценки")
		return view, "", err
	}
	if rec == nil {
		rec = &dbmodels.AISetting{JobID: jobID}
		rec.TenantID = tenantID
	}
	rec.Weights = data.Weights
	rec.Thresholds = data.Thresholds
	rec.RequiredSkills = dbmodels.RequiredSkills(data.RequiredSkills)
	rec.AutoActions = dbmodels.AutoActions(data.AutoActions)
	rec.ID, err = i.store.Save(*rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения настроек ИИ оценки")
		return view, "", err
	}
	logger.Info("настройки ИИ оценки сохранены")
	return aiapimodels.AISettingConvert(*rec), "", nil
}
