package models

type MessageSenderType string

const (
	SenderCompany   MessageSenderType = "COMPANY"
	SenderJobSeeker MessageSenderType = "JOB_SEEKER"
	SenderSystem    MessageSenderType = "SYSTEM"
)

func (s MessageSenderType) IsValid() bool {
	return s == SenderCompany || s == SenderJobSeeker || s == SenderSystem
}

// SenderTypeByRole отправитель сообщения по роли пользователя
func SenderTypeByRole(role UserRole) MessageSenderType {
	if role == JobSeekerRole {
		return SenderJobSeeker
	}
	return SenderCompany
}
