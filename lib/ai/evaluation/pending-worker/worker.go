package pendingworker

import (
	"context"
	"time"

	"recruit-backend/db"
	"recruit-backend/lib/ai/evaluation"
	applicationstore "recruit-backend/lib/application/store"
	baseworker "recruit-backend/lib/utils/base-worker"
	"recruit-backend/lib/utils/helpers"
)

const batchSize = 50

// StartWorker дооценка откликов, оценка которых потерялась при перезапуске
func StartWorker(ctx context.Context, runInterval, pendingAge time.Duration) {
	i := &impl{
		BaseImpl:         *baseworker.NewInstance("PendingEvaluationWorker", 30*time.Second, runInterval),
		applicationStore: applicationstore.NewInstance(db.DB),
		evaluation:       evaluation.Instance,
		pendingAge:       pendingAge,
		now:              time.Now,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	applicationStore applicationstore.Provider
	evaluation       evaluation.Provider
	pendingAge       time.Duration
	now              func() time.Time
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.applicationStore.ListPendingEvaluation(i.now().Add(-i.pendingAge), batchSize)
	if err != nil {
		logger.WithError(err).Error("Ошибка получения списка откликов без оценки")
		return
	}
	for _, application := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		err = i.evaluation.RunEvaluation(ctx, application.ID)
		if err != nil {
			logger.
				WithError(err).
				WithField("tenant_id", application.TenantID).
				WithField("application_id", application.ID).
				Error("Ошибка оценки отклика")
			continue
		}
	}
}
