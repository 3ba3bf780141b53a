package models

// TemplateVariable ключ переменной шаблона сообщения, в тексте шаблона записывается как {{ключ}}
type TemplateVariable string

const (
	TplFullName     TemplateVariable = "氏名"
	TplGivenName    TemplateVariable = "姓"
	TplJobTitle     TemplateVariable = "求人名"
	TplCompanyName  TemplateVariable = "会社名"
	TplStaffName    TemplateVariable = "担当者名"
	TplAppliedDate  TemplateVariable = "応募日"
	TplScheduleLink TemplateVariable = "日程調整URL"
)

// TemplateVariables порядок важен, в нем переменные отдаются в api
var TemplateVariables = []TemplateVariable{
	TplFullName,
	TplGivenName,
	TplJobTitle,
	TplCompanyName,
	TplStaffName,
	TplAppliedDate,
	TplScheduleLink,
}

var templateVariableDescription = map[TemplateVariable]string{
	TplFullName:     "応募者の氏名",
	TplGivenName:    "応募者の姓",
	TplJobTitle:     "求人タイトル",
	TplCompanyName:  "会社名",
	TplStaffName:    "担当者名",
	TplAppliedDate:  "応募日",
	TplScheduleLink: "日程調整URL",
}

func (v TemplateVariable) Placeholder() string {
	return "{{" + string(v) + "}}"
}

func (v TemplateVariable) Description() string {
	return templateVariableDescription[v]
}

type AutoReplyNotifyData struct {
	CompanyName   string
	JobSeekerName string
	JobTitle      string
	Body          string
}
