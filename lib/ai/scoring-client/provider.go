package scoringclient

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/openai/openai-go"
	"github.com/pkg/errors"
	dbmodels "recruit-backend/models/db"
)

//go:generate mockgen -source=./provider.go -destination=./mocks/scoring_client.mock.go -package=scoringclientmocks Provider

type Provider interface {
	Score(ctx context.Context, prompt string) (ScoreResult, error)
}

type ScoreResult struct {
	Score     int
	Breakdown dbmodels.Breakdown
	AiComment string
	Tokens    int64
	Raw       string
	AiName    dbmodels.AiName
}

var (
	ErrMissingCredential = errors.New("не задан ключ доступа к ИИ")
	ErrEmptyResponse     = errors.New("пустой ответ ИИ")
	ErrInvalidJSON       = errors.New("ответ ИИ не является корректным json")
)

type ErrorClass int

const (
	ErrorClassNone ErrorClass = iota
	// ErrorClassRecoverable сервис недоступен для нас (квота, авторизация, нет ключа), можно оценить без ИИ
	ErrorClassRecoverable
	ErrorClassFatal
)

func (c ErrorClass) String() string {
	switch c {
	case ErrorClassNone:
		return "none"
	case ErrorClassRecoverable:
		return "recoverable"
	default:
		return "fatal"
	}
}

const insufficientQuotaCode = "insufficient_quota"

// StatusError http статус ответа провайдера без собственного типа ошибки
type StatusError struct {
	Vendor     dbmodels.AiName
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: статус %d: %v", e.Vendor, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// ClassifyError закрытый список ошибок, после которых допустима упрощенная оценка
func ClassifyError(err error) ErrorClass {
	if err == nil {
		return ErrorClassNone
	}
	if errors.Is(err, ErrMissingCredential) {
		return ErrorClassRecoverable
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429,
			apiErr.StatusCode == 401,
			apiErr.Code == insufficientQuotaCode:
			return ErrorClassRecoverable
		}
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case 429, 401:
			return ErrorClassRecoverable
		}
	}
	return ErrorClassFatal
}

// IsRetryable нет смысла повторять запрос без ключа
func IsRetryable(err error) bool {
	return !errors.Is(err, ErrMissingCredential)
}

type scorePayload struct {
	Score     *float64         `json:"score"`
	Breakdown breakdownPayload `json:"breakdown"`
	AiComment string           `json:"aiComment"`
}

// breakdownPayload модель может вернуть дробные оценки по критериям
type breakdownPayload struct {
	SkillMatch      float64 `json:"skillMatch"`
	Experience      float64 `json:"experience"`
	Education       float64 `json:"education"`
	Motivation      float64 `json:"motivation"`
	ResponseQuality float64 `json:"responseQuality"`
}

func (b breakdownPayload) toBreakdown() dbmodels.Breakdown {
	return dbmodels.Breakdown{
		SkillMatch:      clampScore(b.SkillMatch),
		Experience:      clampScore(b.Experience),
		Education:       clampScore(b.Education),
		Motivation:      clampScore(b.Motivation),
		ResponseQuality: clampScore(b.ResponseQuality),
	}
}

// ParseScorePayload разбор json ответа модели, score и оценки по критериям округляются и ограничиваются 0..100
func ParseScorePayload(content string) (ScoreResult, error) {
	content = stripCodeFence(content)
	if content == "" {
		return ScoreResult{}, ErrEmptyResponse
	}
	var payload scorePayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return ScoreResult{}, errors.Wrap(ErrInvalidJSON, err.Error())
	}
	if payload.Score == nil {
		return ScoreResult{}, errors.Wrap(ErrInvalidJSON, "отсутствует поле score")
	}
	return ScoreResult{
		Score:     clampScore(*payload.Score),
		Breakdown: payload.Breakdown.toBreakdown(),
		AiComment: payload.AiComment,
		Raw:       content,
	}, nil
}

func clampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

// stripCodeFence модели без json режима иногда оборачивают ответ в ```json ... ```
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```")
	if idx := strings.Index(content, "\n"); idx >= 0 {
		content = content[idx+1:]
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
