package evaluation

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/openai/openai-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	aisettings "recruit-backend/lib/ai-settings"
	ailogstore "recruit-backend/lib/ai/ai-log-store"
	evaluationstore "recruit-backend/lib/ai/evaluation/store"
	"recruit-backend/lib/ai/fallback"
	"recruit-backend/lib/ai/retry"
	scoringclient "recruit-backend/lib/ai/scoring-client"
	scoringclientmocks "recruit-backend/lib/ai/scoring-client/mocks"
	applicationstore "recruit-backend/lib/application/store"
	autoreplymocks "recruit-backend/lib/auto-reply/mocks"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
)

type fakeApplicationStore struct {
	applicationstore.Provider
	list     map[string]dbmodels.Application
	statuses map[string]models.ApplicationStatus
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	rec, ok := f.list[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeApplicationStore) UpdateStatus(id string, status models.ApplicationStatus) error {
	f.statuses[id] = status
	return nil
}

// fakeEvaluationStore одна запись на отклик, как уникальный индекс в БД
type fakeEvaluationStore struct {
	evaluationstore.Provider
	rows    map[string]dbmodels.AiEvaluation
	upserts int
}

func (f *fakeEvaluationStore) Upsert(rec dbmodels.AiEvaluation) error {
	f.upserts++
	f.rows[rec.ApplicationID] = rec
	return nil
}

func (f *fakeEvaluationStore) GetByApplicationID(applicationID string) (*dbmodels.AiEvaluation, error) {
	rec, ok := f.rows[applicationID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type fakeAiLogStore struct {
	ailogstore.Provider
	saved []dbmodels.AiLog
}

func (f *fakeAiLogStore) Save(rec dbmodels.AiLog) (string, error) {
	f.saved = append(f.saved, rec)
	return "log-1", nil
}

type fakeSettings struct {
	aisettings.Provider
}

func (f fakeSettings) GetEffective(tenantID, jobID string) (dbmodels.AISetting, error) {
	return dbmodels.DefaultAISetting(tenantID), nil
}

type testEnv struct {
	instance     impl
	applications *fakeApplicationStore
	evaluations  *fakeEvaluationStore
	aiLogs       *fakeAiLogStore
	scoring      *scoringclientmocks.MockProvider
	autoReply    *autoreplymocks.MockProvider
	sleeps       []time.Duration
}

func getInstance(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	application := dbmodels.Application{
		JobID:       "job-1",
		JobSeekerID: "seeker-1",
		Job:         &dbmodels.Job{Title: "エンジニア", Description: "Go開発"},
		FormData:    dbmodels.FormData{"志望動機": "御社のプロダクトに共感しました"},
		Status:      models.ApplicationStatusNew,
	}
	application.ID = "app-1"
	application.TenantID = "tenant-1"

	env := &testEnv{
		applications: &fakeApplicationStore{
			list:     map[string]dbmodels.Application{"app-1": application},
			statuses: map[string]models.ApplicationStatus{},
		},
		evaluations: &fakeEvaluationStore{rows: map[string]dbmodels.AiEvaluation{}},
		aiLogs:      &fakeAiLogStore{},
		scoring:     scoringclientmocks.NewMockProvider(ctrl),
		autoReply:   autoreplymocks.NewMockProvider(ctrl),
	}
	env.instance = impl{
		applicationStore: env.applications,
		aiSettings:       fakeSettings{},
		scoring:          env.scoring,
		aiLogStore:       env.aiLogs,
		evaluationStore:  env.evaluations,
		autoReply:        env.autoReply,
		retryPolicy: retry.Policy{
			MaxAttempts: 3,
			Backoff:     retry.Linear(time.Second),
			Sleep: func(ctx context.Context, d time.Duration) error {
				env.sleeps = append(env.sleeps, d)
				return nil
			},
			Retryable: scoringclient.IsRetryable,
		},
		now: func() time.Time {
			return time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
		},
	}
	return env
}

func apiError(status int) error {
	req, _ := http.NewRequest(http.MethodPost, "https://api.openai.com/v1/chat/completions", nil)
	return &openai.Error{
		StatusCode: status,
		Request:    req,
		Response:   &http.Response{StatusCode: status},
	}
}

func TestRunEvaluation(t *testing.T) {
	t.Run(`model score is classified with tenant thresholds`, func(t *testing.T) {
		env := getInstance(t)
		env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, prompt string) (scoringclient.ScoreResult, error) {
				require.Contains(t, prompt, "エンジニア")
				require.Contains(t, prompt, "御社のプロダクトに共感しました")
				return scoringclient.ScoreResult{Score: 78, AiComment: "良い", Raw: `{"score":78}`, Tokens: 120, AiName: dbmodels.AiOpenAIType}, nil
			})
		env.autoReply.EXPECT().SendAutoReply(gomock.Any(), gomock.Any(), models.AIRankA).Return(nil)

		err := env.instance.RunEvaluation(context.TODO(), "app-1")
		require.Nil(t, err)
		rec := env.evaluations.rows["app-1"]
		require.Equal(t, models.AIRankA, rec.Rank)
		require.Equal(t, 78, rec.Score)
		require.False(t, rec.IsFallback)
		require.Len(t, env.aiLogs.saved, 1)
		require.Equal(t, int64(120), env.aiLogs.saved[0].Tokens)
		require.Equal(t, "tenant-1", env.aiLogs.saved[0].TenantID)
		require.Empty(t, env.sleeps)
	})

	t.Run(`transient error is retried with linear backoff`, func(t *testing.T) {
		env := getInstance(t)
		gomock.InOrder(
			env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{}, scoringclient.ErrInvalidJSON),
			env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{}, scoringclient.ErrEmptyResponse),
			env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{Score: 92}, nil),
		)
		env.autoReply.EXPECT().SendAutoReply(gomock.Any(), gomock.Any(), models.AIRankS).Return(nil)

		err := env.instance.RunEvaluation(context.TODO(), "app-1")
		require.Nil(t, err)
		require.Equal(t, []time.Duration{time.Second, 2 * time.Second}, env.sleeps)
		require.Equal(t, models.AIRankS, env.evaluations.rows["app-1"].Rank)
	})

	t.Run(`429 three times falls back and still replies`, func(t *testing.T) {
		env := getInstance(t)
		env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{}, apiError(429)).Times(3)
		env.autoReply.EXPECT().SendAutoReply(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := env.instance.RunEvaluation(context.TODO(), "app-1")
		require.Nil(t, err)
		require.Empty(t, env.applications.statuses)
		rec := env.evaluations.rows["app-1"]
		require.True(t, rec.IsFallback)
		require.Equal(t, fallback.Comment, rec.AiComment)
		require.GreaterOrEqual(t, rec.Score, 40)
		require.LessOrEqual(t, rec.Score, 80)
		require.Empty(t, env.aiLogs.saved)
		require.Len(t, env.sleeps, 2)
	})

	t.Run(`missing credential falls back without retries`, func(t *testing.T) {
		env := getInstance(t)
		env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{}, scoringclient.ErrMissingCredential).Times(1)
		env.autoReply.EXPECT().SendAutoReply(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := env.instance.RunEvaluation(context.TODO(), "app-1")
		require.Nil(t, err)
		require.True(t, env.evaluations.rows["app-1"].IsFallback)
		require.Empty(t, env.sleeps)
	})

	t.Run(`500 three times marks application for screening`, func(t *testing.T) {
		env := getInstance(t)
		env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{}, apiError(500)).Times(3)

		err := env.instance.RunEvaluation(context.TODO(), "app-1")
		require.NotNil(t, err)
		require.Equal(t, models.ApplicationStatusScreening, env.applications.statuses["app-1"])
		require.Empty(t, env.evaluations.rows)
		require.Zero(t, env.evaluations.upserts)
	})

	t.Run(`second run overwrites the single evaluation`, func(t *testing.T) {
		env := getInstance(t)
		gomock.InOrder(
			env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{Score: 55}, nil),
			env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{Score: 55}, nil),
		)
		env.autoReply.EXPECT().SendAutoReply(gomock.Any(), gomock.Any(), models.AIRankB).Return(nil).Times(2)

		require.Nil(t, env.instance.RunEvaluation(context.TODO(), "app-1"))
		require.Nil(t, env.instance.RunEvaluation(context.TODO(), "app-1"))
		require.Len(t, env.evaluations.rows, 1)
		require.Equal(t, 2, env.evaluations.upserts)
		require.Equal(t, 55, env.evaluations.rows["app-1"].Score)
	})

	t.Run(`auto-reply error is returned`, func(t *testing.T) {
		env := getInstance(t)
		env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{Score: 30}, nil)
		env.autoReply.EXPECT().SendAutoReply(gomock.Any(), gomock.Any(), models.AIRankC).Return(errors.New("db down"))

		err := env.instance.RunEvaluation(context.TODO(), "app-1")
		require.NotNil(t, err)
		require.Len(t, env.evaluations.rows, 1)
	})

	t.Run(`unknown application`, func(t *testing.T) {
		env := getInstance(t)
		err := env.instance.RunEvaluation(context.TODO(), "app-404")
		require.NotNil(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	staff := authutils.User{ID: "user-1", TenantID: "tenant-1", Role: models.TenantAdminRole}

	t.Run(`other tenant is forbidden`, func(t *testing.T) {
		env := getInstance(t)
		_, err := env.instance.Evaluate(context.TODO(), authutils.User{ID: "user-2", TenantID: "tenant-2", Role: models.TenantUserRole}, "app-1")
		require.True(t, errors.Is(err, authutils.ErrForbidden))
	})
	t.Run(`unknown application`, func(t *testing.T) {
		env := getInstance(t)
		_, err := env.instance.Evaluate(context.TODO(), staff, "app-404")
		require.True(t, errors.Is(err, authutils.ErrNotFound))
	})
	t.Run(`returns fresh evaluation`, func(t *testing.T) {
		env := getInstance(t)
		env.scoring.EXPECT().Score(gomock.Any(), gomock.Any()).Return(scoringclient.ScoreResult{Score: 150}, nil)
		env.autoReply.EXPECT().SendAutoReply(gomock.Any(), gomock.Any(), models.AIRankS).Return(nil)

		view, err := env.instance.Evaluate(context.TODO(), staff, "app-1")
		require.Nil(t, err)
		require.Equal(t, "app-1", view.ApplicationID)
		require.Equal(t, models.AIRankS, view.Rank)
	})
}
