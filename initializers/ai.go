package initializers

import (
	"recruit-backend/config"
	scoringclient "recruit-backend/lib/ai/scoring-client"
	dbmodels "recruit-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// InitScoringClient клиент ИИ по настройке AI.Provider, без ключа оценка пойдет упрощенным способом
func InitScoringClient() scoringclient.Provider {
	switch dbmodels.AiName(config.Conf.AI.Provider) {
	case dbmodels.AiYaGptType:
		log.Info("Оценка откликов через YandexGPT")
		return scoringclient.NewYaGptClient(config.Conf.AI.YandexGPT.IAMToken, config.Conf.AI.YandexGPT.CatalogID)
	case dbmodels.AiOpenAIType:
	default:
		log.WithField("provider", config.Conf.AI.Provider).Warn("неизвестный провайдер ИИ, используется OpenAI")
	}
	if config.Conf.AI.OpenAI.APIKey == "" {
		log.Warn("не задан OPENAI_API_KEY, отклики будут оцениваться упрощенно")
	}
	return scoringclient.NewOpenAIClient(config.Conf.AI.OpenAI.APIKey, config.Conf.AI.OpenAI.Model,
		config.Conf.AI.OpenAI.BaseURL, config.Conf.AI.OpenAI.Timeout)
}
