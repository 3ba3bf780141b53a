package messagetemplate

import (
	"strings"

	"recruit-backend/db"
	messagetemplatestore "recruit-backend/lib/message-template/store"
	"recruit-backend/models"
	msgtemplateapimodels "recruit-backend/models/api/message-template"
	dbmodels "recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(tenantID string, data msgtemplateapimodels.MsgTemplateData) (id string, err error)
	Update(tenantID, id string, data msgtemplateapimodels.MsgTemplateData) (hMsg string, err error)
	GetByID(tenantID, id string) (view *msgtemplateapimodels.MsgTemplateView, err error)
	Delete(tenantID, id string) (hMsg string, err error)
	List(tenantID string, filter msgtemplateapimodels.MsgTemplateFilter) (list []msgtemplateapimodels.MsgTemplateView, hMsg string, err error)
	// GetByRank шаблон ранга, если его нет - общий шаблон тенанта, nil если нет ни одного
	GetByRank(tenantID string, rank models.AIRank) (*dbmodels.MessageTemplate, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(messagetemplatestore.NewInstance(db.DB))
}

func NewInstance(store messagetemplatestore.Provider) Provider {
	return &impl{
		msgTemplateStore: store,
	}
}

type impl struct {
	msgTemplateStore messagetemplatestore.Provider
}

func (i impl) Create(tenantID string, data msgtemplateapimodels.MsgTemplateData) (id string, err error) {
	rec := dbmodels.MessageTemplate{
		Name:     strings.TrimSpace(data.Name),
		Rank:     data.Rank,
		Subject:  data.Subject,
		Body:     data.Body,
		IsActive: true,
	}
	if data.IsActive != nil {
		rec.IsActive = *data.IsActive
	}
	rec.TenantID = tenantID
	id, err = i.msgTemplateStore.Create(rec)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithError(err).
			Error("ошибка создания шаблона сообщения")
		return "", err
	}
	return id, nil
}

func (i impl) Update(tenantID, id string, data msgtemplateapimodels.MsgTemplateData) (hMsg string, err error) {
	logger := log.WithFields(log.Fields{
		"tenant_id":   tenantID,
		"template_id": id,
	})
	rec, err := i.msgTemplateStore.GetByID(tenantID, id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения шаблона сообщения")
		return "", err
	}
	if rec == nil {
		return "テンプレートが見つかりません", nil
	}
	updMap := map[string]interface{}{
		"name":    strings.TrimSpace(data.Name),
		"rank":    data.Rank,
		"subject": data.Subject,
		"body":    data.Body,
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	err = i.msgTemplateStore.Update(tenantID, id, updMap)
	if err != nil {
		logger.WithError(err).Error("ошибка обновления шаблона сообщения")
		return "", err
	}
	return "", nil
}

func (i impl) GetByID(tenantID, id string) (view *msgtemplateapimodels.MsgTemplateView, err error) {
	rec, err := i.msgTemplateStore.GetByID(tenantID, id)
	if err != nil {
		log.
			WithFields(log.Fields{"tenant_id": tenantID, "template_id": id}).
			WithError(err).
			Error("ошибка получения шаблона сообщения")
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	result := rec.ToModel()
	return &result, nil
}

func (i impl) Delete(tenantID, id string) (hMsg string, err error) {
	logger := log.WithFields(log.Fields{
		"tenant_id":   tenantID,
		"template_id": id,
	})
	rec, err := i.msgTemplateStore.GetByID(tenantID, id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения шаблона сообщения")
		return "", err
	}
	if rec == nil {
		return "テンプレートが見つかりません", nil
	}
	if err = i.msgTemplateStore.Delete(tenantID, id); err != nil {
		logger.WithError(err).Error("ошибка удаления шаблона сообщения")
		return "", err
	}
	return "", nil
}

func (i impl) List(tenantID string, filter msgtemplateapimodels.MsgTemplateFilter) (list []msgtemplateapimodels.MsgTemplateView, hMsg string, err error) {
	dbFilter := dbmodels.MessageTemplateFilter{}
	switch rank := strings.ToUpper(strings.TrimSpace(filter.Rank)); rank {
	case "":
	case "ALL":
		dbFilter.AllRank = true
	default:
		aiRank := models.AIRank(rank)
		if !aiRank.IsValid() {
			return nil, "ランクが不正です", nil
		}
		dbFilter.Rank = &aiRank
	}
	recList, err := i.msgTemplateStore.List(tenantID, dbFilter)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithError(err).
			Error("ошибка получения списка шаблонов сообщения")
		return nil, "", err
	}
	list = make([]msgtemplateapimodels.MsgTemplateView, 0, len(recList))
	for _, template := range recList {
		list = append(list, template.ToModel())
	}
	return list, "", nil
}

func (i impl) GetByRank(tenantID string, rank models.AIRank) (*dbmodels.MessageTemplate, error) {
	rec, err := i.msgTemplateStore.GetActiveByRank(tenantID, &rank)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения шаблона сообщения по рангу")
	}
	if rec != nil {
		return rec, nil
	}
	rec, err = i.msgTemplateStore.GetActiveByRank(tenantID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения общего шаблона сообщения")
	}
	return rec, nil
}
