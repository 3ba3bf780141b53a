package message

import (
	"strings"
	"time"

	"recruit-backend/db"
	applicationstore "recruit-backend/lib/application/store"
	messagestore "recruit-backend/lib/message/store"
	tenantstore "recruit-backend/lib/tenant/store"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/models"
	messageapimodels "recruit-backend/models/api/message"
	dbmodels "recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const defaultCompanySenderName = "担当者"

type Provider interface {
	ListThreads(user authutils.User, filter messageapimodels.ThreadFilter) ([]messageapimodels.ThreadView, error)
	GetThread(user authutils.User, applicationID string) (*messageapimodels.ThreadDetail, error)
	Send(user authutils.User, data messageapimodels.SendMessage) (*messageapimodels.MessageView, error)
	MarkRead(user authutils.User, data messageapimodels.MarkRead) (int64, error)
	UnreadCount(user authutils.User) (int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		messageStore:     messagestore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		tenantStore:      tenantstore.NewInstance(db.DB),
		now:              time.Now,
	}
}

type impl struct {
	messageStore     messagestore.Provider
	applicationStore applicationstore.Provider
	tenantStore      tenantstore.Provider
	now              func() time.Time
}

func (i impl) getLogger(user authutils.User) *log.Entry {
	return log.WithFields(log.Fields{
		"user_id":   user.ID,
		"tenant_id": user.TenantID,
		"role":      user.Role,
	})
}

// unreadFrom чьи непрочитанные сообщения важны пользователю
func unreadFrom(user authutils.User) []models.MessageSenderType {
	if user.IsJobSeeker() {
		return []models.MessageSenderType{models.SenderCompany, models.SenderSystem}
	}
	return []models.MessageSenderType{models.SenderJobSeeker}
}

func checkScope(user authutils.User) error {
	if user.IsJobSeeker() || user.Role.IsSystemAdmin() {
		return nil
	}
	if !user.Role.IsStaff() || user.TenantID == "" {
		return authutils.ErrForbidden
	}
	return nil
}

func (i impl) ListThreads(user authutils.User, filter messageapimodels.ThreadFilter) ([]messageapimodels.ThreadView, error) {
	if err := checkScope(user); err != nil {
		return nil, err
	}
	dbFilter := dbmodels.MessageThreadFilter{
		MessageScope:      user.MessageScope(),
		UnreadSenderTypes: unreadFrom(user),
	}
	if !user.IsJobSeeker() {
		dbFilter.Keyword = strings.TrimSpace(filter.Keyword)
	}
	threads, err := i.messageStore.ListThreads(dbFilter)
	if err != nil {
		i.getLogger(user).WithError(err).Error("ошибка получения списка переписок")
		return nil, err
	}
	result := make([]messageapimodels.ThreadView, 0, len(threads))
	for _, thread := range threads {
		result = append(result, messageapimodels.ThreadView{
			ApplicationID: thread.ApplicationID,
			JobSeekerName: thread.JobSeekerName,
			JobTitle:      thread.JobTitle,
			LastMessage:   thread.LastMessage,
			LastMessageAt: thread.LastMessageAt,
			SenderType:    thread.SenderType,
			UnreadCount:   thread.UnreadCount,
		})
	}
	return result, nil
}

func (i impl) getApplication(user authutils.User, applicationID string) (*dbmodels.Application, error) {
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения отклика")
	}
	if err = authutils.CheckApplicationAccess(user, application); err != nil {
		return nil, err
	}
	return application, nil
}

func (i impl) GetThread(user authutils.User, applicationID string) (*messageapimodels.ThreadDetail, error) {
	logger := i.getLogger(user).WithField("application_id", applicationID)
	application, err := i.getApplication(user, applicationID)
	if err != nil {
		return nil, err
	}
	list, err := i.messageStore.ListByApplication(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сообщений переписки")
		return nil, err
	}
	result := messageapimodels.ThreadDetail{
		ApplicationID: application.ID,
		Messages:      make([]messageapimodels.MessageView, 0, len(list)),
	}
	if application.Job != nil {
		result.JobTitle = application.Job.Title
		if application.Job.Tenant != nil {
			result.CompanyName = application.Job.Tenant.Name
		}
	}
	if result.CompanyName == "" {
		tenant, err := i.tenantStore.GetByID(application.TenantID)
		if err != nil {
			logger.WithError(err).Warn("ошибка получения компании")
		} else if tenant != nil {
			result.CompanyName = tenant.Name
		}
	}
	if application.JobSeeker != nil {
		result.JobSeekerName = application.JobSeeker.Name
	}
	for _, rec := range list {
		result.Messages = append(result.Messages, convertMessage(rec))
	}
	return &result, nil
}

func (i impl) Send(user authutils.User, data messageapimodels.SendMessage) (*messageapimodels.MessageView, error) {
	logger := i.getLogger(user).WithField("application_id", data.ApplicationID)
	if err := checkScope(user); err != nil {
		return nil, err
	}
	application, err := i.getApplication(user, data.ApplicationID)
	if err != nil {
		return nil, err
	}
	rec := dbmodels.Message{
		ApplicationID: application.ID,
		SenderID:      user.ID,
		SenderType:    models.SenderTypeByRole(user.Role),
		Content:       data.Content,
		SentAt:        i.now(),
	}
	if rec.SenderType == models.SenderCompany {
		rec.SenderName = user.Name
	}
	rec.TenantID = application.TenantID
	created, err := i.messageStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки сообщения")
		return nil, err
	}
	view := convertMessage(*created)
	return &view, nil
}

func (i impl) MarkRead(user authutils.User, data messageapimodels.MarkRead) (int64, error) {
	if err := checkScope(user); err != nil {
		return 0, err
	}
	count, err := i.messageStore.MarkRead(user.MessageScope(), data.MessageIDs)
	if err != nil {
		i.getLogger(user).WithError(err).Error("ошибка отметки сообщений прочитанными")
		return 0, err
	}
	return count, nil
}

func (i impl) UnreadCount(user authutils.User) (int64, error) {
	if err := checkScope(user); err != nil {
		return 0, err
	}
	count, err := i.messageStore.CountUnread(user.MessageScope(), unreadFrom(user))
	if err != nil {
		i.getLogger(user).WithError(err).Error("ошибка подсчета непрочитанных сообщений")
		return 0, err
	}
	return count, nil
}

func senderName(rec dbmodels.Message) string {
	switch rec.SenderType {
	case models.SenderCompany:
		if rec.SenderName != "" {
			return rec.SenderName
		}
		return defaultCompanySenderName
	case models.SenderSystem:
		return models.SystemUser
	default:
		return ""
	}
}

func convertMessage(rec dbmodels.Message) messageapimodels.MessageView {
	return messageapimodels.MessageView{
		ID:          rec.ID,
		SenderID:    rec.SenderID,
		SenderType:  rec.SenderType,
		SenderName:  senderName(rec),
		Content:     rec.Content,
		IsAutoReply: rec.IsAutoReply,
		IsRead:      rec.IsRead,
		SentAt:      rec.SentAt,
	}
}
