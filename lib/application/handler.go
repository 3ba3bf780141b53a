package application

import (
	"bytes"
	"fmt"
	"time"

	"recruit-backend/db"
	"recruit-backend/lib/ai/evaluation"
	applicationstore "recruit-backend/lib/application/store"
	xlsexport "recruit-backend/lib/export/xls"
	jobstore "recruit-backend/lib/job/store"
	authutils "recruit-backend/lib/utils/auth-utils"
	initchecker "recruit-backend/lib/utils/init-checker"
	"recruit-backend/models"
	applicationapimodels "recruit-backend/models/api/application"
	dbmodels "recruit-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrAlreadyApplied = errors.New("отклик на вакансию уже существует")

type Provider interface {
	// Create отклик соискателя, оценка запускается в фоне после сохранения
	Create(user authutils.User, data applicationapimodels.CreateApplication) (id string, err error)
	List(tenantID string, filter applicationapimodels.ApplicantFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	GetByID(tenantID, id string) (*applicationapimodels.ApplicationView, error)
	UpdateStatus(tenantID, id string, status models.ApplicationStatus) error
	Export(tenantID string, filter applicationapimodels.ApplicantFilter) (*bytes.Buffer, error)
	// ListMine отклики соискателя с вакансией, компанией и рангом оценки
	ListMine(user authutils.User) ([]applicationapimodels.MyApplicationView, error)
	Dashboard(tenantID string) (*applicationapimodels.DashboardView, error)
}

var Instance Provider

func NewHandler(location *time.Location) {
	if location == nil {
		location = time.UTC
	}
	instance := impl{
		store:      applicationstore.NewInstance(db.DB),
		jobStore:   jobstore.NewInstance(db.DB),
		evaluation: evaluation.Instance,
		exporter:   xlsexport.Instance,
		location:   location,
		now:        time.Now,
	}
	initchecker.CheckInit(
		"evaluation", instance.evaluation,
		"exporter", instance.exporter,
	)
	Instance = instance
}

type impl struct {
	store      applicationstore.Provider
	jobStore   jobstore.Provider
	evaluation evaluation.Provider
	exporter   xlsexport.Provider
	location   *time.Location
	now        func() time.Time
}

const (
	exportLimit         = 10000
	recentApplicants    = 5
	trendMonths         = 6
	dashboardDateFormat = "2006-01-02"
)

func (i impl) Create(user authutils.User, data applicationapimodels.CreateApplication) (id string, err error) {
	logger := log.
		WithField("job_id", data.JobID).
		WithField("job_seeker_id", user.ID)
	job, err := i.jobStore.GetPublished(data.JobID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии")
		return "", err
	}
	if job == nil {
		return "", authutils.ErrNotFound
	}
	logger = logger.WithField("tenant_id", job.TenantID)
	exist, err := i.store.ExistByJobSeeker(job.ID, user.ID)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки существующего отклика")
		return "", err
	}
	if exist {
		return "", ErrAlreadyApplied
	}
	rec := dbmodels.Application{
		JobID:       job.ID,
		JobSeekerID: user.ID,
		FormData:    data.FormData,
		Status:      models.ApplicationStatusNew,
		AppliedAt:   i.now(),
	}
	rec.TenantID = job.TenantID
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания отклика")
		return "", errors.Wrap(err, "ошибка создания отклика")
	}
	logger.WithField("application_id", id).Info("создан отклик")
	i.evaluation.RunAsync(id)
	return id, nil
}

func (i impl) List(tenantID string, filter applicationapimodels.ApplicantFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(tenantID, filter.ToDbFilter())
	if err != nil {
		log.WithField("tenant_id", tenantID).WithError(err).Error("ошибка получения списка откликов")
		return nil, 0, err
	}
	list = make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicationapimodels.ApplicationConvert(rec, false))
	}
	return list, rowCount, nil
}

func (i impl) GetByID(tenantID, id string) (*applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, authutils.ErrNotFound
	}
	view := applicationapimodels.ApplicationConvert(*rec, true)
	return &view, nil
}

func (i impl) UpdateStatus(tenantID, id string, status models.ApplicationStatus) error {
	rec, err := i.store.GetByTenantAndID(tenantID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return authutils.ErrNotFound
	}
	if err = i.store.UpdateStatus(id, status); err != nil {
		return err
	}
	log.
		WithField("tenant_id", tenantID).
		WithField("application_id", id).
		WithField("status", status).
		Info("изменен статус отклика")
	return nil
}

func (i impl) Export(tenantID string, filter applicationapimodels.ApplicantFilter) (*bytes.Buffer, error) {
	dbFilter := filter.ToDbFilter()
	dbFilter.Page = 1
	dbFilter.Limit = exportLimit
	recList, _, err := i.store.List(tenantID, dbFilter)
	if err != nil {
		return nil, err
	}
	list := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicationapimodels.ApplicationConvert(rec, false))
	}
	return i.exporter.ExportApplicantList(list)
}

func (i impl) ListMine(user authutils.User) ([]applicationapimodels.MyApplicationView, error) {
	if user.ID == "" || user.Role != models.JobSeekerRole {
		return nil, authutils.ErrForbidden
	}
	recList, err := i.store.ListByJobSeeker(user.ID)
	if err != nil {
		log.WithField("job_seeker_id", user.ID).WithError(err).Error("ошибка получения откликов соискателя")
		return nil, err
	}
	list := make([]applicationapimodels.MyApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicationapimodels.MyApplicationConvert(rec))
	}
	return list, nil
}

func (i impl) Dashboard(tenantID string) (*applicationapimodels.DashboardView, error) {
	logger := log.WithField("tenant_id", tenantID)
	now := i.now().In(i.location)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, i.location)

	var result applicationapimodels.DashboardView
	var err error
	counters := []struct {
		dst    *int64
		filter dbmodels.ApplicationCountFilter
	}{
		{&result.Stats.MonthlyCount, dbmodels.ApplicationCountFilter{AppliedFrom: monthStart}},
		{&result.Stats.NewCount, dbmodels.ApplicationCountFilter{Status: models.ApplicationStatusNew}},
		{&result.Stats.InterviewCount, dbmodels.ApplicationCountFilter{Status: models.ApplicationStatusInterviewScheduled}},
		{&result.Stats.OfferedCount, dbmodels.ApplicationCountFilter{Status: models.ApplicationStatusOffered}},
	}
	for _, counter := range counters {
		if *counter.dst, err = i.store.Count(tenantID, counter.filter); err != nil {
			logger.WithError(err).Error("ошибка подсчета откликов")
			return nil, err
		}
	}

	result.Trend = make([]applicationapimodels.MonthCount, 0, trendMonths)
	for k := trendMonths - 1; k >= 0; k-- {
		from := monthStart.AddDate(0, -k, 0)
		count, err := i.store.Count(tenantID, dbmodels.ApplicationCountFilter{AppliedFrom: from, AppliedTo: from.AddDate(0, 1, 0)})
		if err != nil {
			logger.WithError(err).Error("ошибка подсчета откликов по месяцам")
			return nil, err
		}
		result.Trend = append(result.Trend, applicationapimodels.MonthCount{
			Month: fmt.Sprintf("%d月", int(from.Month())),
			Count: count,
		})
	}

	rankCounts, err := i.store.CountByRank(tenantID)
	if err != nil {
		logger.WithError(err).Error("ошибка подсчета откликов по рангам")
		return nil, err
	}
	result.RankDistribution = make([]applicationapimodels.RankCount, 0, len(models.AIRanks))
	for _, rank := range models.AIRanks {
		result.RankDistribution = append(result.RankDistribution, applicationapimodels.RankCount{
			Rank:  rank,
			Name:  fmt.Sprintf("%sランク", rank),
			Value: rankCounts[rank],
		})
	}

	recList, err := i.store.ListRecent(tenantID, recentApplicants)
	if err != nil {
		logger.WithError(err).Error("ошибка получения последних откликов")
		return nil, err
	}
	result.RecentApplicants = make([]applicationapimodels.RecentApplicant, 0, len(recList))
	for _, rec := range recList {
		item := applicationapimodels.RecentApplicant{
			ID:   rec.ID,
			Date: rec.AppliedAt.In(i.location).Format(dashboardDateFormat),
		}
		if rec.JobSeeker != nil {
			item.Name = rec.JobSeeker.Name
		}
		if rec.Job != nil {
			item.Job = rec.Job.Title
		}
		if rec.Evaluation != nil {
			rank, score := rec.Evaluation.Rank, rec.Evaluation.Score
			item.Rank = &rank
			item.Score = &score
		}
		result.RecentApplicants = append(result.RecentApplicants, item)
	}
	return &result, nil
}
