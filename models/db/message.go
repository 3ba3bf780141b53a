package dbmodels

import (
	"recruit-backend/models"
	"time"
)

type Message struct {
	BaseTenantModel
	ApplicationID string                   `gorm:"type:varchar(36);index"`
	Application   *Application             `gorm:"foreignKey:ApplicationID"`
	SenderID      string                   `gorm:"type:varchar(36)"`
	SenderType    models.MessageSenderType `gorm:"type:varchar(20);index"`
	SenderName    string                   `gorm:"type:varchar(255)"`
	Content       string                   `gorm:"type:text"`
	IsAutoReply   bool
	IsRead        bool `gorm:"index"`
	SentAt        time.Time `gorm:"index"`
}

// MessageThread последнее сообщение по отклику и кол-во непрочитанных
type MessageThread struct {
	ApplicationID string
	JobSeekerName string
	JobTitle      string
	LastMessage   string
	LastMessageAt time.Time
	SenderType    models.MessageSenderType
	UnreadCount   int64
}

// MessageScope сообщения, доступные пользователю: сотруднику - по тенанту, соискателю - по его откликам
type MessageScope struct {
	TenantID    string
	JobSeekerID string
}

type MessageThreadFilter struct {
	MessageScope
	Keyword string
	// UnreadSenderTypes чьи непрочитанные сообщения считаем
	UnreadSenderTypes []models.MessageSenderType
}
