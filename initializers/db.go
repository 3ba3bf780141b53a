package initializers

import (
	"recruit-backend/config"
	"recruit-backend/db"

	log "github.com/sirupsen/logrus"
)

func InitDBConnection() {
	conf := config.Conf.Database
	err := db.Connect(db.ConnectConfig{
		Host:         conf.Host,
		Port:         conf.Port,
		Database:     conf.Name,
		User:         conf.User,
		Password:     conf.Password,
		DebugMode:    conf.DebugMode != nil && *conf.DebugMode,
		Migrate:      conf.MigrateOnStart == nil || *conf.MigrateOnStart,
		MaxOpenConns: conf.MaxOpenConns,
	})
	if err != nil {
		log.
			WithError(err).
			WithField("db_host", conf.Host).
			WithField("db_name", conf.Name).
			Fatal("ошибка подключения к БД")
	}
}
