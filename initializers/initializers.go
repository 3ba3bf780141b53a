package initializers

import (
	"context"
	"time"

	"recruit-backend/config"
	"recruit-backend/fiberlog"
	aisettings "recruit-backend/lib/ai-settings"
	"recruit-backend/lib/ai/evaluation"
	pendingworker "recruit-backend/lib/ai/evaluation/pending-worker"
	"recruit-backend/lib/application"
	autoreply "recruit-backend/lib/auto-reply"
	xlsexport "recruit-backend/lib/export/xls"
	"recruit-backend/lib/job"
	"recruit-backend/lib/message"
	messagetemplate "recruit-backend/lib/message-template"
	ratelimit "recruit-backend/lib/rate-limit"
)

var (
	LoggerConfig *fiberlog.Config
	RateLimiter  *ratelimit.Limiter
)

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection()
	InitSmtp()
	location := config.Conf.Location()

	RateLimiter = ratelimit.NewLimiter(config.Conf.RateLimit.Limit, config.Conf.RateLimit.Window)
	RateLimiter.StartSweep(ctx, config.Conf.RateLimit.Window)

	// порядок важен: обработчики получают Instance зависимостей при создании
	messagetemplate.NewHandler()
	aisettings.NewHandler()
	autoreply.NewHandler(location)
	evaluation.NewHandler(InitScoringClient(), evaluation.Config{
		MaxAttempts: config.Conf.Evaluation.MaxAttempts,
		BackoffStep: time.Duration(config.Conf.Evaluation.BackoffStepMs) * time.Millisecond,
	})
	xlsexport.NewHandler(location)
	application.NewHandler(location)
	job.NewHandler()
	message.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача дооценки откликов, оценка которых не была выполнена
	pendingworker.StartWorker(ctx, config.Conf.Evaluation.SweepInterval, config.Conf.Evaluation.PendingAge)
}
