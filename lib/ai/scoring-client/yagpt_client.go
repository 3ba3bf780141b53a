package scoringclient

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
	dbmodels "recruit-backend/models/db"
)

const yaGptSystemPromt = "Отвечай только JSON объектом без пояснений и без markdown разметки."

type yaGptImpl struct {
	client    *yandexgptclient.YandexGPTClient
	token     string
	catalogID string
}

func NewYaGptClient(token, catalog string) Provider {
	return &yaGptImpl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		token:     token,
		catalogID: catalog,
	}
}

func (i yaGptImpl) Score(ctx context.Context, prompt string) (ScoreResult, error) {
	if strings.TrimSpace(i.token) == "" || strings.TrimSpace(i.catalogID) == "" {
		return ScoreResult{}, ErrMissingCredential
	}
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(i.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: scoringTemperature,
			MaxTokens:   2000,
		},
		Messages: []yandexgptclient.YandexGPTMessage{
			{
				Role: yandexgptclient.YandexGPTMessageRoleSystem,
				Text: yaGptSystemPromt,
			},
			{
				Role: yandexgptclient.YandexGPTMessageRoleUser,
				Text: prompt,
			},
		},
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return ScoreResult{}, errors.Wrap(yaGptError(err), "ошибка запроса к API YandexGPT")
	}
	if len(response.Result.Alternatives) == 0 {
		return ScoreResult{}, ErrEmptyResponse
	}
	result, err := ParseScorePayload(response.Result.Alternatives[0].Message.Text)
	if err != nil {
		return ScoreResult{}, err
	}
	result.AiName = dbmodels.AiYaGptType
	return result, nil
}

// библиотека возвращает ошибку api текстом, статус достаётся из сообщения
var yaGptStatusPatterns = []struct {
	re     *regexp.Regexp
	status int
}{
	{regexp.MustCompile(`\b429\b|(?i)too many requests|RESOURCE_EXHAUSTED`), http.StatusTooManyRequests},
	{regexp.MustCompile(`\b401\b|(?i)unauthorized|UNAUTHENTICATED`), http.StatusUnauthorized},
}

// yaGptError ошибки квоты и авторизации YandexGPT приводятся к StatusError
func yaGptError(err error) error {
	msg := err.Error()
	for _, p := range yaGptStatusPatterns {
		if p.re.MatchString(msg) {
			return &StatusError{Vendor: dbmodels.AiYaGptType, StatusCode: p.status, Err: err}
		}
	}
	return err
}
