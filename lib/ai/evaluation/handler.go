package evaluation

import (
	"context"
	"runtime/debug"
	"time"

	"recruit-backend/db"
	aisettings "recruit-backend/lib/ai-settings"
	ailogstore "recruit-backend/lib/ai/ai-log-store"
	evaluationstore "recruit-backend/lib/ai/evaluation/store"
	"recruit-backend/lib/ai/fallback"
	"recruit-backend/lib/ai/prompt"
	"recruit-backend/lib/ai/rank"
	"recruit-backend/lib/ai/retry"
	scoringclient "recruit-backend/lib/ai/scoring-client"
	applicationstore "recruit-backend/lib/application/store"
	autoreply "recruit-backend/lib/auto-reply"
	jobstore "recruit-backend/lib/job/store"
	authutils "recruit-backend/lib/utils/auth-utils"
	initchecker "recruit-backend/lib/utils/init-checker"
	"recruit-backend/models"
	aiapimodels "recruit-backend/models/api/ai"
	dbmodels "recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// RunEvaluation оценка отклика: ИИ с повторами, при недоступности ИИ - упрощенная оценка, затем автоответ.
	// Ошибка возвращается только если ИИ ответил ошибкой, не допускающей упрощенной оценки (отклик переводится в SCREENING)
	RunEvaluation(ctx context.Context, applicationID string) error
	// RunAsync запуск оценки в фоне, ошибка только логируется
	RunAsync(applicationID string)
	// Evaluate ручной перезапуск оценки сотрудником
	Evaluate(ctx context.Context, user authutils.User, applicationID string) (*aiapimodels.EvaluationView, error)
}

var Instance Provider

type Config struct {
	MaxAttempts int
	BackoffStep time.Duration
}

func NewHandler(scoring scoringclient.Provider, cfg Config) {
	instance := impl{
		applicationStore: applicationstore.NewInstance(db.DB),
		jobStore:         jobstore.NewInstance(db.DB),
		aiSettings:       aisettings.Instance,
		scoring:          scoring,
		aiLogStore:       ailogstore.NewInstance(db.DB),
		evaluationStore:  evaluationstore.NewInstance(db.DB),
		autoReply:        autoreply.Instance,
		retryPolicy: retry.Policy{
			MaxAttempts: cfg.MaxAttempts,
			Backoff:     retry.Linear(cfg.BackoffStep),
			Retryable:   scoringclient.IsRetryable,
		},
		now: time.Now,
	}
	initchecker.CheckInit(
		"aiSettings", instance.aiSettings,
		"scoring", instance.scoring,
		"autoReply", instance.autoReply,
	)
	Instance = instance
}

type impl struct {
	applicationStore applicationstore.Provider
	jobStore         jobstore.Provider
	aiSettings       aisettings.Provider
	scoring          scoringclient.Provider
	aiLogStore       ailogstore.Provider
	evaluationStore  evaluationstore.Provider
	autoReply        autoreply.Provider
	retryPolicy      retry.Policy
	now              func() time.Time
}

func (i impl) RunEvaluation(ctx context.Context, applicationID string) error {
	logger := log.WithField("application_id", applicationID)
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения отклика для оценки")
		return errors.Wrap(err, "ошибка получения отклика")
	}
	if application == nil {
		logger.Error("отклик для оценки не найден")
		return errors.Errorf("отклик не найден (%v)", applicationID)
	}
	logger = logger.WithField("tenant_id", application.TenantID)

	job := application.Job
	if job == nil {
		job, err = i.jobStore.GetByID(application.TenantID, application.JobID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения вакансии для оценки")
			return errors.Wrap(err, "ошибка получения вакансии")
		}
		if job == nil {
			logger.WithField("job_id", application.JobID).Error("вакансия для оценки не найдена")
			return errors.Errorf("вакансия не найдена (%v)", application.JobID)
		}
	}

	setting, err := i.aiSettings.GetEffective(application.TenantID, application.JobID)
	if err != nil {
		return err
	}

	promptText := prompt.BuildEvaluationPrompt(prompt.EvaluationPromptInput{
		JobTitle:       job.Title,
		JobDescription: job.Description,
		Requirements:   job.Requirements,
		EmploymentType: job.EmploymentType.ToHuman(),
		FormData:       application.FormData,
		Weights:        setting.Weights,
		RequiredSkills: setting.RequiredSkills,
	})

	var result scoringclient.ScoreResult
	err = i.retryPolicy.Do(ctx, func(attempt int) error {
		var scoreErr error
		result, scoreErr = i.scoring.Score(ctx, promptText)
		if scoreErr != nil {
			logger.
				WithError(scoreErr).
				WithField("attempt", attempt).
				Warn("ошибка оценки отклика ИИ")
		}
		return scoreErr
	})

	rec := dbmodels.AiEvaluation{
		ApplicationID: application.ID,
	}
	switch scoringclient.ClassifyError(err) {
	case scoringclient.ErrorClassNone:
		rec.Score = result.Score
		rec.Breakdown = result.Breakdown
		rec.AiComment = result.AiComment
		rec.Rank = rank.Classify(result.Score, setting.Thresholds)
		i.saveLog(logger, *application, promptText, result)
	case scoringclient.ErrorClassRecoverable:
		logger.WithError(err).Warn("ИИ недоступен, выполняется упрощенная оценка")
		fallbackResult := fallback.Evaluate(application.FormData, setting.Thresholds)
		rec.Score = fallbackResult.Score
		rec.Breakdown = fallbackResult.Breakdown
		rec.AiComment = fallbackResult.AiComment
		rec.Rank = fallbackResult.Rank
		rec.IsFallback = true
	default:
		logger.WithError(err).Error("оценка отклика не выполнена, отклик передан на ручную проверку")
		if updErr := i.applicationStore.UpdateStatus(application.ID, models.ApplicationStatusScreening); updErr != nil {
			logger.WithError(updErr).Error("ошибка перевода отклика в статус SCREENING")
		}
		return errors.Wrap(err, "ошибка оценки отклика ИИ")
	}
	rec.EvaluatedAt = i.now()

	logger = logger.
		WithField("rank", rec.Rank).
		WithField("score", rec.Score).
		WithField("is_fallback", rec.IsFallback)
	if err = i.evaluationStore.Upsert(rec); err != nil {
		logger.WithError(err).Error("ошибка сохранения оценки отклика")
		return errors.Wrap(err, "ошибка сохранения оценки отклика")
	}
	logger.Info("отклик оценен")

	return i.autoReply.SendAutoReply(ctx, *application, rec.Rank)
}

func (i impl) saveLog(logger *log.Entry, application dbmodels.Application, promptText string, result scoringclient.ScoreResult) {
	rec := dbmodels.AiLog{
		ApplicationID: application.ID,
		Prompt:        promptText,
		Answer:        result.Raw,
		Tokens:        result.Tokens,
		ReqestType:    dbmodels.AiScoreApplicationType,
		AiName:        result.AiName,
	}
	rec.TenantID = application.TenantID
	if _, err := i.aiLogStore.Save(rec); err != nil {
		logger.WithError(err).Warn("ошибка сохранения лога запроса к ИИ")
	}
}

func (i impl) RunAsync(applicationID string) {
	go func() {
		logger := log.WithField("application_id", applicationID)
		defer func() {
			if r := recover(); r != nil {
				logger.
					WithField("panic_stack", string(debug.Stack())).
					Errorf("panic: (%v)", r)
			}
		}()
		if err := i.RunEvaluation(context.Background(), applicationID); err != nil {
			logger.WithError(err).Error("фоновая оценка отклика завершилась ошибкой")
		}
	}()
}

func (i impl) Evaluate(ctx context.Context, user authutils.User, applicationID string) (*aiapimodels.EvaluationView, error) {
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if err = authutils.CheckApplicationAccess(user, application); err != nil {
		return nil, err
	}
	if user.IsJobSeeker() {
		return nil, authutils.ErrForbidden
	}
	if err = i.RunEvaluation(ctx, applicationID); err != nil {
		return nil, err
	}
	rec, err := i.evaluationStore.GetByApplicationID(applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения оценки отклика")
	}
	if rec == nil {
		return nil, authutils.ErrNotFound
	}
	view := aiapimodels.EvaluationConvert(*rec)
	return &view, nil
}
