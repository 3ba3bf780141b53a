package msgtemplateapimodels

import (
	"recruit-backend/models"
	"strings"

	"github.com/pkg/errors"
)

type MsgTemplateData struct {
	Name     string         `json:"name"`      // название шаблона
	Rank     *models.AIRank `json:"rank"`      // ранг, для которого используется шаблон (null - для всех рангов)
	Subject  string         `json:"subject"`   // тема
	Body     string         `json:"body"`      // текст с переменными {{氏名}} и т.д.
	IsActive *bool          `json:"is_active"` // по умолчанию true
}

func (r MsgTemplateData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("テンプレート名を入力してください")
	}
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("本文を入力してください")
	}
	if r.Rank != nil && !r.Rank.IsValid() {
		return errors.New("ランクが不正です")
	}
	return nil
}

type MsgTemplateView struct {
	ID string `json:"id"`
	MsgTemplateData
}

type MsgTemplateFilter struct {
	Rank string `query:"rank"` // S/A/B/C или ALL - только общие шаблоны
}

// TemplateItem переменная шаблона
type TemplateItem struct {
	Key         string `json:"key"`
	Placeholder string `json:"placeholder"`
	Description string `json:"description"`
}

type PreviewRequest struct {
	Body string `json:"body"`
}

func (r PreviewRequest) Validate() error {
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("本文を入力してください")
	}
	return nil
}

type PreviewResponse struct {
	Body string `json:"body"`
}
