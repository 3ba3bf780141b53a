package messageapimodels

import (
	"recruit-backend/models"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type SendMessage struct {
	ApplicationID string `json:"application_id"`
	Content       string `json:"content"`
}

func (r SendMessage) Validate() error {
	if strings.TrimSpace(r.ApplicationID) == "" {
		return errors.New("application_id は必須です")
	}
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("メッセージを入力してください")
	}
	return nil
}

type MarkRead struct {
	MessageIDs []string `json:"message_ids"`
}

func (r MarkRead) Validate() error {
	if len(r.MessageIDs) == 0 {
		return errors.New("message_ids は必須です")
	}
	return nil
}

type ThreadFilter struct {
	Keyword string `query:"keyword"` // по имени соискателя или названию вакансии
}

type ThreadView struct {
	ApplicationID string                   `json:"application_id"`
	JobSeekerName string                   `json:"job_seeker_name"`
	JobTitle      string                   `json:"job_title"`
	LastMessage   string                   `json:"last_message"`
	LastMessageAt time.Time                `json:"last_message_at"`
	SenderType    models.MessageSenderType `json:"sender_type"`
	UnreadCount   int64                    `json:"unread_count"`
}

type MessageView struct {
	ID          string                   `json:"id"`
	SenderID    string                   `json:"sender_id"`
	SenderType  models.MessageSenderType `json:"sender_type"`
	SenderName  string                   `json:"sender_name"`
	Content     string                   `json:"content"`
	IsAutoReply bool                     `json:"is_auto_reply"`
	IsRead      bool                     `json:"is_read"`
	SentAt      time.Time                `json:"sent_at"`
}

type ThreadDetail struct {
	ApplicationID string        `json:"application_id"`
	JobTitle      string        `json:"job_title"`
	CompanyName   string        `json:"company_name"`
	JobSeekerName string        `json:"job_seeker_name"`
	Messages      []MessageView `json:"messages"`
}

type UnreadCount struct {
	Count int64 `json:"count"`
}
