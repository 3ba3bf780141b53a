package initializers

import (
	"recruit-backend/config"
	"recruit-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	conf := config.Conf.Smtp
	tlsEnabled := conf.TLSEnabled == nil || *conf.TLSEnabled
	if err := smtp.Connect(conf.User, conf.Password, conf.Host, conf.Port, conf.Sender, tlsEnabled); err != nil {
		log.WithError(err).Fatal("ошибка инициализации SMTP клиента")
	}
	logger := log.WithField("smtp_host", conf.Host).WithField("smtp_port", conf.Port)
	if !smtp.Instance.IsConfigured() {
		logger.Warn("SMTP не настроен, письма об автоответах отправляться не будут")
		return
	}
	logger.Info("SMTP клиент настроен")
}
