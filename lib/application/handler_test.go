package application

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"recruit-backend/lib/ai/evaluation"
	applicationstore "recruit-backend/lib/application/store"
	jobstore "recruit-backend/lib/job/store"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/models"
	applicationapimodels "recruit-backend/models/api/application"
	dbmodels "recruit-backend/models/db"
)

type fakeJobStore struct {
	jobstore.Provider
	published map[string]dbmodels.Job
}

func (f fakeJobStore) GetPublished(id string) (*dbmodels.Job, error) {
	rec, ok := f.published[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type fakeApplicationStore struct {
	applicationstore.Provider
	created []dbmodels.Application
	exist   bool
	stored  []dbmodels.Application
}

func (f *fakeApplicationStore) ExistByJobSeeker(jobID, jobSeekerID string) (bool, error) {
	return f.exist, nil
}

func (f *fakeApplicationStore) Create(rec dbmodels.Application) (string, error) {
	f.created = append(f.created, rec)
	return "app-1", nil
}

func (f *fakeApplicationStore) GetByTenantAndID(tenantID, id string) (*dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByJobSeeker(jobSeekerID string) ([]dbmodels.Application, error) {
	var result []dbmodels.Application
	for _, rec := range f.stored {
		if rec.JobSeekerID == jobSeekerID {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (f *fakeApplicationStore) Count(tenantID string, filter dbmodels.ApplicationCountFilter) (int64, error) {
	var rowCount int64
	for _, rec := range f.stored {
		if rec.TenantID != tenantID {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if !filter.AppliedFrom.IsZero() && rec.AppliedAt.Before(filter.AppliedFrom) {
			continue
		}
		if !filter.AppliedTo.IsZero() && !rec.AppliedAt.Before(filter.AppliedTo) {
			continue
		}
		rowCount++
	}
	return rowCount, nil
}

func (f *fakeApplicationStore) ListRecent(tenantID string, limit int) ([]dbmodels.Application, error) {
	var result []dbmodels.Application
	for _, rec := range f.stored {
		if rec.TenantID == tenantID && len(result) < limit {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (f *fakeApplicationStore) CountByRank(tenantID string) (map[models.AIRank]int64, error) {
	result := make(map[models.AIRank]int64)
	for _, rec := range f.stored {
		if rec.TenantID == tenantID && rec.Evaluation != nil {
			result[rec.Evaluation.Rank]++
		}
	}
	return result, nil
}

type fakeEvaluation struct {
	evaluation.Provider
	started []string
}

func (f *fakeEvaluation) RunAsync(applicationID string) {
	f.started = append(f.started, applicationID)
}

func getInstance(store *fakeApplicationStore, runner *fakeEvaluation) impl {
	job := dbmodels.Job{Title: "エンジニア", Status: models.JobStatusPublished}
	job.ID = "job-1"
	job.TenantID = "tenant-1"
	return impl{
		store:      store,
		jobStore:   fakeJobStore{published: map[string]dbmodels.Job{"job-1": job}},
		evaluation: runner,
		location:   time.FixedZone("JST", 9*60*60),
		now: func() time.Time {
			return time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
		},
	}
}

func TestCreate(t *testing.T) {
	seeker := authutils.User{ID: "seeker-1", Role: models.JobSeekerRole}
	data := applicationapimodels.CreateApplication{JobID: "job-1", FormData: map[string]string{"志望動機": "よろしくお願いします"}}

	t.Run(`application is created and evaluated`, func(t *testing.T) {
		store := &fakeApplicationStore{}
		runner := &fakeEvaluation{}
		id, err := getInstance(store, runner).Create(seeker, data)
		require.Nil(t, err)
		require.Equal(t, "app-1", id)
		require.Len(t, store.created, 1)
		require.Equal(t, "tenant-1", store.created[0].TenantID)
		require.Equal(t, models.ApplicationStatusNew, store.created[0].Status)
		require.Equal(t, []string{"app-1"}, runner.started)
	})
	t.Run(`second application to the same job`, func(t *testing.T) {
		runner := &fakeEvaluation{}
		_, err := getInstance(&fakeApplicationStore{exist: true}, runner).Create(seeker, data)
		require.True(t, errors.Is(err, ErrAlreadyApplied))
		require.Empty(t, runner.started)
	})
	t.Run(`job is not published`, func(t *testing.T) {
		_, err := getInstance(&fakeApplicationStore{}, &fakeEvaluation{}).Create(seeker, applicationapimodels.CreateApplication{JobID: "job-2", FormData: data.FormData})
		require.True(t, errors.Is(err, authutils.ErrNotFound))
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run(`application of another tenant`, func(t *testing.T) {
		err := getInstance(&fakeApplicationStore{}, &fakeEvaluation{}).UpdateStatus("tenant-2", "app-1", models.ApplicationStatusInterviewed)
		require.True(t, errors.Is(err, authutils.ErrNotFound))
	})
}

func newApplication(id, tenantID, seekerID string, status models.ApplicationStatus, appliedAt time.Time, evaluation *dbmodels.AiEvaluation) dbmodels.Application {
	rec := dbmodels.Application{
		JobID:       "job-1",
		Job:         &dbmodels.Job{Title: "エンジニア", Tenant: &dbmodels.Tenant{Name: "株式会社テスト"}},
		JobSeekerID: seekerID,
		JobSeeker:   &dbmodels.JobSeeker{Name: "山田 太郎"},
		Status:      status,
		AppliedAt:   appliedAt,
		Evaluation:  evaluation,
	}
	rec.ID = id
	rec.TenantID = tenantID
	return rec
}

func TestListMine(t *testing.T) {
	appliedAt := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	store := &fakeApplicationStore{stored: []dbmodels.Application{
		newApplication("app-1", "tenant-1", "seeker-1", models.ApplicationStatusScreening, appliedAt, &dbmodels.AiEvaluation{Rank: models.AIRankA, Score: 78}),
		newApplication("app-2", "tenant-2", "seeker-1", models.ApplicationStatusNew, appliedAt, nil),
		newApplication("app-3", "tenant-1", "seeker-2", models.ApplicationStatusNew, appliedAt, nil),
	}}
	instance := getInstance(store, &fakeEvaluation{})

	t.Run(`own applications with company and rank`, func(t *testing.T) {
		list, err := instance.ListMine(authutils.User{ID: "seeker-1", Role: models.JobSeekerRole})
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "app-1", list[0].ID)
		require.Equal(t, "株式会社テスト", list[0].CompanyName)
		require.Equal(t, "エンジニア", list[0].JobTitle)
		require.NotNil(t, list[0].Rank)
		require.Equal(t, models.AIRankA, *list[0].Rank)
		require.Equal(t, 78, *list[0].Score)
		require.Nil(t, list[1].Rank)
		require.Nil(t, list[1].Score)
	})
	t.Run(`staff cannot list as job seeker`, func(t *testing.T) {
		_, err := instance.ListMine(authutils.User{ID: "u1", TenantID: "tenant-1", Role: models.TenantUserRole})
		require.True(t, errors.Is(err, authutils.ErrForbidden))
	})
}

func TestDashboard(t *testing.T) {
	store := &fakeApplicationStore{stored: []dbmodels.Application{
		newApplication("app-1", "tenant-1", "s1", models.ApplicationStatusNew, time.Date(2024, time.March, 31, 16, 0, 0, 0, time.UTC), &dbmodels.AiEvaluation{Rank: models.AIRankS, Score: 92}),
		newApplication("app-2", "tenant-1", "s2", models.ApplicationStatusInterviewScheduled, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), &dbmodels.AiEvaluation{Rank: models.AIRankA, Score: 75}),
		newApplication("app-3", "tenant-1", "s3", models.ApplicationStatusOffered, time.Date(2023, time.November, 10, 0, 0, 0, 0, time.UTC), &dbmodels.AiEvaluation{Rank: models.AIRankA, Score: 70}),
		newApplication("app-4", "tenant-2", "s4", models.ApplicationStatusNew, time.Date(2024, time.April, 1, 1, 0, 0, 0, time.UTC), nil),
	}}
	view, err := getInstance(store, &fakeEvaluation{}).Dashboard("tenant-1")
	require.Nil(t, err)

	t.Run(`stats use the configured time zone`, func(t *testing.T) {
		// app-1 01:00 JST 1 апреля попадает в текущий месяц
		require.Equal(t, int64(1), view.Stats.MonthlyCount)
		require.Equal(t, int64(1), view.Stats.NewCount)
		require.Equal(t, int64(1), view.Stats.InterviewCount)
		require.Equal(t, int64(1), view.Stats.OfferedCount)
	})
	t.Run(`six month trend ends with the current month`, func(t *testing.T) {
		require.Len(t, view.Trend, 6)
		require.Equal(t, "11月", view.Trend[0].Month)
		require.Equal(t, int64(1), view.Trend[0].Count)
		require.Equal(t, "3月", view.Trend[4].Month)
		require.Equal(t, int64(1), view.Trend[4].Count)
		require.Equal(t, "4月", view.Trend[5].Month)
		require.Equal(t, int64(1), view.Trend[5].Count)
	})
	t.Run(`rank distribution lists every rank`, func(t *testing.T) {
		require.Equal(t, []applicationapimodels.RankCount{
			{Rank: models.AIRankS, Name: "Sランク", Value: 1},
			{Rank: models.AIRankA, Name: "Aランク", Value: 2},
			{Rank: models.AIRankB, Name: "Bランク", Value: 0},
			{Rank: models.AIRankC, Name: "Cランク", Value: 0},
		}, view.RankDistribution)
	})
	t.Run(`recent applicants`, func(t *testing.T) {
		require.Len(t, view.RecentApplicants, 3)
		require.Equal(t, "app-1", view.RecentApplicants[0].ID)
		require.Equal(t, "2024-04-01", view.RecentApplicants[0].Date)
		require.Equal(t, models.AIRankS, *view.RecentApplicants[0].Rank)
		require.Equal(t, 92, *view.RecentApplicants[0].Score)
	})
}
