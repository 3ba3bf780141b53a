package autoreply

import (
	"bytes"
	"text/template"

	"recruit-backend/models"
)

var notifyTemplate = template.Must(template.New("auto_reply_notify").Parse(`{{.JobSeekerName}} 様

{{.CompanyName}}より「{{.JobTitle}}」の応募について新しいメッセージが届きました。

----------------------------------------
{{.Body}}
----------------------------------------

※このメールは送信専用です。返信はメッセージ画面から行ってください。
`))

func buildNotifyMessage(data models.AutoReplyNotifyData) (string, error) {
	buf := new(bytes.Buffer)
	if err := notifyTemplate.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
