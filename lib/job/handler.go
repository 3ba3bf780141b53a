package job

import (
	"recruit-backend/db"
	jobstore "recruit-backend/lib/job/store"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/models"
	jobapimodels "recruit-backend/models/api/job"
	dbmodels "recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(tenantID string, data jobapimodels.JobData) (id string, err error)
	Update(tenantID, id string, data jobapimodels.JobData) error
	UpdateStatus(tenantID, id string, status models.JobStatus) error
	Delete(tenantID, id string) error
	GetByID(tenantID, id string) (*jobapimodels.JobView, error)
	List(tenantID string, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	// ListPublished опубликованные вакансии всех компаний
	ListPublished(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	GetPublished(id string) (*jobapimodels.JobView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) getLogger(tenantID, id string) *log.Entry {
	logger := log.WithField("tenant_id", tenantID)
	if id != "" {
		logger = logger.WithField("job_id", id)
	}
	return logger
}

func (i impl) Create(tenantID string, data jobapimodels.JobData) (id string, err error) {
	rec := dbmodels.Job{
		Title:          data.Title,
		Description:    data.Description,
		Requirements:   dbmodels.RawJSON(data.Requirements),
		EmploymentType: data.EmploymentType,
		Location:       data.Location,
		SalaryMin:      data.SalaryMin,
		SalaryMax:      data.SalaryMax,
		Status:         models.JobStatusDraft,
	}
	rec.TenantID = tenantID
	id, err = i.store.Create(rec)
	if err != nil {
		i.getLogger(tenantID, "").WithError(err).Error("ошибка создания вакансии")
		return "", errors.Wrap(err, "ошибка создания вакансии")
	}
	i.getLogger(tenantID, id).Info("создана вакансия")
	return id, nil
}

func (i impl) Update(tenantID, id string, data jobapimodels.JobData) error {
	if err := i.checkExist(tenantID, id); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":           data.Title,
		"description":     data.Description,
		"requirements":    dbmodels.RawJSON(data.Requirements),
		"employment_type": data.EmploymentType,
		"location":        data.Location,
		"salary_min":      data.SalaryMin,
		"salary_max":      data.SalaryMax,
	}
	if err := i.store.Update(tenantID, id, updMap); err != nil {
		i.getLogger(tenantID, id).WithError(err).Error("ошибка обновления вакансии")
		return errors.Wrap(err, "ошибка обновления вакансии")
	}
	return nil
}

func (i impl) UpdateStatus(tenantID, id string, status models.JobStatus) error {
	if err := i.checkExist(tenantID, id); err != nil {
		return err
	}
	if err := i.store.Update(tenantID, id, map[string]interface{}{"status": status}); err != nil {
		i.getLogger(tenantID, id).WithError(err).Error("ошибка изменения статуса вакансии")
		return errors.Wrap(err, "ошибка изменения статуса вакансии")
	}
	i.getLogger(tenantID, id).WithField("status", status).Info("изменен статус вакансии")
	return nil
}

func (i impl) Delete(tenantID, id string) error {
	if err := i.checkExist(tenantID, id); err != nil {
		return err
	}
	return i.store.Delete(tenantID, id)
}

func (i impl) GetByID(tenantID, id string) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, authutils.ErrNotFound
	}
	view := jobapimodels.JobConvert(*rec)
	return &view, nil
}

func (i impl) List(tenantID string, filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error) {
	return i.list(tenantID, filter.ToDbFilter())
}

func (i impl) ListPublished(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error) {
	dbFilter := filter.ToDbFilter()
	dbFilter.Status = models.JobStatusPublished
	return i.list("", dbFilter)
}

func (i impl) GetPublished(id string) (*jobapimodels.JobView, error) {
	rec, err := i.store.GetPublished(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, authutils.ErrNotFound
	}
	view := jobapimodels.JobConvert(*rec)
	return &view, nil
}

func (i impl) list(tenantID string, filter dbmodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(tenantID, filter)
	if err != nil {
		i.getLogger(tenantID, "").WithError(err).Error("ошибка получения списка вакансий")
		return nil, 0, err
	}
	list = make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobapimodels.JobConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) checkExist(tenantID, id string) error {
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return authutils.ErrNotFound
	}
	return nil
}
