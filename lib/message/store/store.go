package messagestore

import (
	"strings"

	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Message) (*dbmodels.Message, error)
	ListByApplication(applicationID string) ([]dbmodels.Message, error)
	ListThreads(filter dbmodels.MessageThreadFilter) ([]dbmodels.MessageThread, error)
	MarkRead(scope dbmodels.MessageScope, ids []string) (int64, error)
	CountUnread(scope dbmodels.MessageScope, senderTypes []models.MessageSenderType) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Message) (*dbmodels.Message, error) {
	err := i.db.
		Omit("Application").
		Save(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByApplication(applicationID string) (list []dbmodels.Message, err error) {
	err = i.db.
		Where("application_id = ?", applicationID).
		Order("sent_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListThreads(filter dbmodels.MessageThreadFilter) (list []dbmodels.MessageThread, err error) {
	tx := i.db.
		Table("applications a").
		Select(`a.id as application_id,
			s.name as job_seeker_name,
			j.title as job_title,
			m.content as last_message,
			m.sent_at as last_message_at,
			m.sender_type as sender_type,
			(select count(*) from messages u
				where u.application_id = a.id and u.is_read = false and u.sender_type in ?) as unread_count`,
			filter.UnreadSenderTypes).
		Joins("join jobs j on j.id = a.job_id").
		Joins("join job_seekers s on s.id = a.job_seeker_id").
		Joins(`join lateral (select lm.content, lm.sent_at, lm.sender_type from messages lm
			where lm.application_id = a.id order by lm.sent_at desc limit 1) m on true`)
	tx = scopeApplications(tx, "a", filter.MessageScope)
	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		tx = tx.Where("(lower(s.name) like ? or lower(j.title) like ?)", keyword, keyword)
	}
	err = tx.
		Order("m.sent_at desc").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(scope dbmodels.MessageScope, ids []string) (int64, error) {
	tx := i.db.
		Model(&dbmodels.Message{}).
		Where("id in ?", ids).
		Where("application_id in (?)", scopeApplications(i.db.Table("applications a").Select("a.id"), "a", scope))
	result := tx.Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (i impl) CountUnread(scope dbmodels.MessageScope, senderTypes []models.MessageSenderType) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Message{}).
		Where("is_read = ?", false).
		Where("sender_type in ?", senderTypes).
		Where("application_id in (?)", scopeApplications(i.db.Table("applications a").Select("a.id"), "a", scope)).
		Count(&count).
		Error
	return count, err
}

func scopeApplications(tx *gorm.DB, alias string, scope dbmodels.MessageScope) *gorm.DB {
	if scope.TenantID != "" {
		tx = tx.Where(alias+".tenant_id = ?", scope.TenantID)
	}
	if scope.JobSeekerID != "" {
		tx = tx.Where(alias+".job_seeker_id = ?", scope.JobSeekerID)
	}
	return tx
}
