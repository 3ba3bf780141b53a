package dbmodels

type AiLog struct {
	BaseTenantModel
	ApplicationID string       `gorm:"type:varchar(36);index" comment:"Идентификатор отклика"`
	Prompt        string       `comment:"Промпт"`
	Answer        string       `comment:"Ответ ИИ"`
	Tokens        int64        `comment:"Израсходовано токенов"`
	ReqestType    AiReqestType `gorm:"type:varchar(255)" comment:"Тип запроса к ИИ"`
	AiName        AiName       `gorm:"type:varchar(255)" comment:"Название ИИ"`
}

type AiName string

const (
	AiOpenAIType AiName = "openai"
	AiYaGptType  AiName = "yandexgpt"
)

type AiReqestType string

const (
	AiScoreApplicationType AiReqestType = "ScoreApplication"
)
