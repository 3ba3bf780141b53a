package dbmodels

import (
	"recruit-backend/models"
	msgtemplateapimodels "recruit-backend/models/api/message-template"
)

type MessageTemplate struct {
	BaseTenantModel
	Name     string         `gorm:"type:varchar(255)"`
	Rank     *models.AIRank `gorm:"type:varchar(1);index"` // nil - общий шаблон для всех рангов
	Subject  string         `gorm:"type:varchar(255)"`
	Body     string         `gorm:"type:text"`
	IsActive bool           `gorm:"default:true"`
}

type MessageTemplateFilter struct {
	Rank    *models.AIRank
	AllRank bool // только общие шаблоны (rank is null)
}

func (r MessageTemplate) ToModel() msgtemplateapimodels.MsgTemplateView {
	isActive := r.IsActive
	return msgtemplateapimodels.MsgTemplateView{
		ID: r.ID,
		MsgTemplateData: msgtemplateapimodels.MsgTemplateData{
			Name:     r.Name,
			Rank:     r.Rank,
			Subject:  r.Subject,
			Body:     r.Body,
			IsActive: &isActive,
		},
	}
}
