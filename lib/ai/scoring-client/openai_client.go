package scoringclient

import (
	"context"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"
	dbmodels "recruit-backend/models/db"
)

const scoringTemperature = 0.3

type openAIImpl struct {
	client *openai.Client
	apiKey string
	model  string
}

func NewOpenAIClient(apiKey, model, baseURL string, timeout time.Duration) Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// повторы делает оркестратор оценки
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	return &openAIImpl{
		client: openai.NewClient(opts...),
		apiKey: apiKey,
		model:  model,
	}
}

func (i openAIImpl) Score(ctx context.Context, prompt string) (ScoreResult, error) {
	if strings.TrimSpace(i.apiKey) == "" {
		return ScoreResult{}, ErrMissingCredential
	}
	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(i.model),
		Temperature: openai.F(scoringTemperature),
		ResponseFormat: openai.F[openai.ChatCompletionNewParamsResponseFormatUnion](
			openai.ResponseFormatJSONObjectParam{
				Type: openai.F(openai.ResponseFormatJSONObjectTypeJSONObject),
			},
		),
	}
	completion, err := i.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return ScoreResult{}, errors.Wrap(err, "ошибка запроса к OpenAI")
	}
	if len(completion.Choices) == 0 {
		return ScoreResult{}, ErrEmptyResponse
	}
	result, err := ParseScorePayload(completion.Choices[0].Message.Content)
	if err != nil {
		return ScoreResult{}, err
	}
	result.Tokens = completion.Usage.TotalTokens
	result.AiName = dbmodels.AiOpenAIType
	return result, nil
}
