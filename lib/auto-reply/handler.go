package autoreply

import (
	"context"
	"time"

	"recruit-backend/db"
	jobseekerstore "recruit-backend/lib/job-seeker/store"
	jobstore "recruit-backend/lib/job/store"
	messagetemplate "recruit-backend/lib/message-template"
	messagestore "recruit-backend/lib/message/store"
	"recruit-backend/lib/smtp"
	tenantstore "recruit-backend/lib/tenant/store"
	"recruit-backend/lib/utils/helpers"
	initchecker "recruit-backend/lib/utils/init-checker"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=./handler.go -destination=./mocks/auto_reply.mock.go -package=autoreplymocks Provider

type Provider interface {
	// SendAutoReply сообщение соискателю от имени системы по шаблону ранга
	SendAutoReply(ctx context.Context, application dbmodels.Application, rank models.AIRank) error
}

var Instance Provider

func NewHandler(location *time.Location) {
	instance := impl{
		templates:      messagetemplate.Instance,
		messageStore:   messagestore.NewInstance(db.DB),
		jobSeekerStore: jobseekerstore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
		tenantStore:    tenantstore.NewInstance(db.DB),
		mailer:         smtp.Instance,
		location:       location,
		now:            time.Now,
	}
	initchecker.CheckInit(
		"templates", instance.templates,
		"mailer", instance.mailer,
	)
	Instance = instance
}

type impl struct {
	templates      messagetemplate.Provider
	messageStore   messagestore.Provider
	jobSeekerStore jobseekerstore.Provider
	jobStore       jobstore.Provider
	tenantStore    tenantstore.Provider
	mailer         smtp.Provider
	location       *time.Location
	now            func() time.Time
}

func (i impl) SendAutoReply(ctx context.Context, application dbmodels.Application, rank models.AIRank) error {
	logger := log.WithFields(log.Fields{
		"tenant_id":      application.TenantID,
		"application_id": application.ID,
		"rank":           rank,
	})
	tmpl, err := i.templates.GetByRank(application.TenantID, rank)
	if err != nil {
		logger.WithError(err).Error("ошибка получения шаблона автоответа")
		return err
	}
	body, subject := DefaultBody(rank), defaultSubject
	if tmpl != nil {
		body = tmpl.Body
		if tmpl.Subject != "" {
			subject = tmpl.Subject
		}
		logger = logger.WithField("template_id", tmpl.ID)
	}

	jobSeeker, job, tenant, err := i.loadParticipants(application)
	if err != nil {
		logger.WithError(err).Error("ошибка получения данных для автоответа")
		return err
	}
	if jobSeeker == nil || job == nil || tenant == nil {
		logger.
			WithField("job_seeker_found", jobSeeker != nil).
			WithField("job_found", job != nil).
			WithField("tenant_found", tenant != nil).
			Warn("автоответ не отправлен: не найден соискатель, вакансия или компания")
		return nil
	}

	values := messagetemplate.BuildVariables(messagetemplate.VariableSource{
		JobSeekerName: jobSeeker.Name,
		JobTitle:      job.Title,
		CompanyName:   tenant.Name,
		AppliedAt:     application.AppliedAt,
	}, i.location)
	content := messagetemplate.ReplaceVariables(body, values)

	rec := dbmodels.Message{
		ApplicationID: application.ID,
		SenderID:      application.JobSeekerID,
		SenderType:    models.SenderSystem,
		SenderName:    models.SystemUser,
		Content:       content,
		IsAutoReply:   true,
		SentAt:        i.now(),
	}
	rec.TenantID = application.TenantID
	if _, err = i.messageStore.Create(rec); err != nil {
		logger.WithError(err).Error("ошибка сохранения автоответа")
		return errors.Wrap(err, "ошибка сохранения автоответа")
	}
	logger.Info("автоответ отправлен")

	if !helpers.IsContextDone(ctx) {
		i.notify(logger, jobSeeker, models.AutoReplyNotifyData{
			CompanyName:   tenant.Name,
			JobSeekerName: jobSeeker.Name,
			JobTitle:      job.Title,
			Body:          content,
		}, messagetemplate.ReplaceVariables(subject, values))
	}
	return nil
}

func (i impl) loadParticipants(application dbmodels.Application) (jobSeeker *dbmodels.JobSeeker, job *dbmodels.Job, tenant *dbmodels.Tenant, err error) {
	jobSeeker = application.JobSeeker
	if jobSeeker == nil {
		jobSeeker, err = i.jobSeekerStore.GetByID(application.JobSeekerID)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	job = application.Job
	if job == nil {
		job, err = i.jobStore.GetByID(application.TenantID, application.JobID)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if job != nil {
		tenant = job.Tenant
	}
	if tenant == nil {
		tenant, err = i.tenantStore.GetByID(application.TenantID)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return jobSeeker, job, tenant, nil
}

// notify письмо соискателю о новом сообщении, ошибки только логируются
func (i impl) notify(logger *log.Entry, jobSeeker *dbmodels.JobSeeker, data models.AutoReplyNotifyData, subject string) {
	if i.mailer == nil || !i.mailer.IsConfigured() || jobSeeker.Email == "" {
		return
	}
	msg, err := buildNotifyMessage(data)
	if err != nil {
		logger.WithError(err).Error("ошибка формирования письма об автоответе")
		return
	}
	if err = i.mailer.SendEMail(jobSeeker.Email, msg, subject); err != nil {
		logger.WithError(err).Warn("ошибка отправки письма об автоответе")
	}
}
