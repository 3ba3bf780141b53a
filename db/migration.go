package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "recruit-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	models := []struct {
		name  string
		model interface{}
	}{
		{"Tenant", &dbmodels.Tenant{}},
		{"JobSeeker", &dbmodels.JobSeeker{}},
		{"Job", &dbmodels.Job{}},
		{"Application", &dbmodels.Application{}},
		{"AiEvaluation", &dbmodels.AiEvaluation{}},
		{"AISetting", &dbmodels.AISetting{}},
		{"MessageTemplate", &dbmodels.MessageTemplate{}},
		{"Message", &dbmodels.Message{}},
		{"AiLog", &dbmodels.AiLog{}},
	}
	for _, item := range models {
		if err := DB.AutoMigrate(item.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %s", item.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}
