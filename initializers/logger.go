package initializers

import (
	log "github.com/sirupsen/logrus"
	"recruit-backend/fiberlog"
)

// InitLogger общий формат логов и логгер http запросов
func InitLogger(level string) *fiberlog.Config {
	formatter := &log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	}
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		logLevel = log.InfoLevel
	}
	log.SetFormatter(formatter)
	log.SetLevel(logLevel)
	if err != nil {
		log.WithField("level", level).Warn("неизвестный уровень логирования, используется info")
	}

	requestLogger := log.New()
	requestLogger.SetFormatter(formatter)
	requestLogger.SetLevel(logLevel)
	return &fiberlog.Config{
		Logger: requestLogger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagIP,
			fiberlog.RequestID,
		},
		SkipPaths: []string{"/health"},
	}
}
