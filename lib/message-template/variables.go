package messagetemplate

import (
	"fmt"
	"strings"
	"time"

	"recruit-backend/lib/utils/helpers"
	"recruit-backend/models"
	msgtemplateapimodels "recruit-backend/models/api/message-template"
)

// VariableValues значения переменных шаблона по ключу
type VariableValues map[models.TemplateVariable]string

// ReplaceVariables буквальная замена {{ключ}} на значение, неизвестные переменные остаются как есть
func ReplaceVariables(tmpl string, values VariableValues) string {
	result := tmpl
	for _, variable := range models.TemplateVariables {
		value, ok := values[variable]
		if !ok {
			continue
		}
		result = strings.ReplaceAll(result, variable.Placeholder(), value)
	}
	return result
}

func GetVariables() []msgtemplateapimodels.TemplateItem {
	result := make([]msgtemplateapimodels.TemplateItem, 0, len(models.TemplateVariables))
	for _, variable := range models.TemplateVariables {
		result = append(result, msgtemplateapimodels.TemplateItem{
			Key:         string(variable),
			Placeholder: variable.Placeholder(),
			Description: variable.Description(),
		})
	}
	return result
}

type VariableSource struct {
	JobSeekerName string
	JobTitle      string
	CompanyName   string
	AppliedAt     time.Time
	ScheduleLink  string
}

// BuildVariables значения всех семи переменных
func BuildVariables(src VariableSource, loc *time.Location) VariableValues {
	return VariableValues{
		models.TplFullName:     src.JobSeekerName,
		models.TplGivenName:    GivenName(src.JobSeekerName),
		models.TplJobTitle:     src.JobTitle,
		models.TplCompanyName:  src.CompanyName,
		models.TplStaffName:    models.SystemUser,
		models.TplAppliedDate:  FormatAppliedDate(src.AppliedAt, loc),
		models.TplScheduleLink: src.ScheduleLink,
	}
}

// GivenName первое слово имени (пробел, в том числе полноширинный), иначе имя целиком
func GivenName(fullName string) string {
	if token := helpers.FirstToken(fullName); token != "" {
		return token
	}
	return fullName
}

// FormatAppliedDate дата в формате 2024/4/1
func FormatAppliedDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

var previewSource = VariableSource{
	JobSeekerName: "山田 太郎",
	JobTitle:      "Webエンジニア",
	CompanyName:   "株式会社サンプル",
	AppliedAt:     time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC),
	ScheduleLink:  "https://example.com/schedule",
}

// Preview текст шаблона с примерными значениями
func Preview(body string) string {
	return ReplaceVariables(body, BuildVariables(previewSource, time.UTC))
}
