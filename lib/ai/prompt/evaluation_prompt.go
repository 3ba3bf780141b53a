package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	dbmodels "recruit-backend/models/db"
)

type EvaluationPromptInput struct {
	JobTitle       string
	JobDescription string
	Requirements   dbmodels.RawJSON
	EmploymentType string
	FormData       map[string]string
	Weights        dbmodels.Weights
	RequiredSkills []string
}

const evaluationPromptTemplate = `あなたは採用担当のエキスパートです。以下の求人情報と応募者情報を元に、応募者を評価してください。

## 求人情報
- 求人タイトル: %s
- 仕事内容: %s
- 雇用形態: %s
- 応募資格: %s
- 必須スキル: %s

## 応募者情報
%s

## 評価基準と重み
- スキルマッチ: %d%%
- 経験年数: %d%%
- 学歴・資格: %d%%
- 志望動機: %d%%
- レスポンス品質: %d%%

## 出力形式（JSON）
{
  "score": <0-100の数値>,
  "breakdown": {
    "skillMatch": <0-100>,
    "experience": <0-100>,
    "education": <0-100>,
    "motivation": <0-100>,
    "responseQuality": <0-100>
  },
  "aiComment": "<採用担当者向けの評価コメント（日本語、200字以内）>"
}`

// BuildEvaluationPrompt текст запроса на оценку отклика, ответ ожидается строго в json
func BuildEvaluationPrompt(in EvaluationPromptInput) string {
	return fmt.Sprintf(evaluationPromptTemplate,
		in.JobTitle,
		in.JobDescription,
		in.EmploymentType,
		indentRaw(in.Requirements),
		strings.Join(in.RequiredSkills, ", "),
		indentValue(in.FormData),
		in.Weights.SkillMatch,
		in.Weights.Experience,
		in.Weights.Education,
		in.Weights.Motivation,
		in.Weights.ResponseQuality,
	)
}

func indentRaw(raw dbmodels.RawJSON) string {
	if len(raw) == 0 {
		return "null"
	}
	buf := new(bytes.Buffer)
	if err := json.Indent(buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// indentValue json с отступом в 2 пробела, без экранирования <, >, &
func indentValue(v interface{}) string {
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return "null"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
