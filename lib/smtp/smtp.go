package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(to, message, subject string) error
	IsConfigured() bool
}

func Connect(user, password, host, port, sender string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		sender:     sender,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	sender     string
	tlsEnabled bool
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) from() string {
	if i.sender != "" {
		return i.sender
	}
	return i.user
}

func (i impl) SendEMail(to, message, subject string) (err error) {
	logger := log.WithField("sender", i.from())
	if !i.IsConfigured() {
		logger.Warn("письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := strings.NewReader(buildMessage(i.from(), to, subject, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.from(), sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.from(), sendTo, body)
	}
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}

func buildMessage(from, to, subject, message string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	}
	text := strings.ReplaceAll(message, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n", "\r\n")
	return fmt.Sprintf("%s\r\n\r\n%s\r\n", strings.Join(headers, "\r\n"), text)
}
