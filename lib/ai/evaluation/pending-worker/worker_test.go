package pendingworker

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"recruit-backend/lib/ai/evaluation"
	applicationstore "recruit-backend/lib/application/store"
	baseworker "recruit-backend/lib/utils/base-worker"
	dbmodels "recruit-backend/models/db"
)

type fakeApplicationStore struct {
	applicationstore.Provider
	before time.Time
	list   []dbmodels.Application
}

func (f *fakeApplicationStore) ListPendingEvaluation(before time.Time, limit int) ([]dbmodels.Application, error) {
	f.before = before
	return f.list, nil
}

type fakeEvaluation struct {
	evaluation.Provider
	runs []string
}

func (f *fakeEvaluation) RunEvaluation(ctx context.Context, applicationID string) error {
	f.runs = append(f.runs, applicationID)
	if applicationID == "app-1" {
		return errors.New("ai down")
	}
	return nil
}

func TestHandle(t *testing.T) {
	now := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
	app1 := dbmodels.Application{}
	app1.ID = "app-1"
	app2 := dbmodels.Application{}
	app2.ID = "app-2"

	t.Run(`every pending application is evaluated`, func(t *testing.T) {
		store := &fakeApplicationStore{list: []dbmodels.Application{app1, app2}}
		runner := &fakeEvaluation{}
		i := impl{
			BaseImpl:         *baseworker.NewInstance("test", 0, time.Minute),
			applicationStore: store,
			evaluation:       runner,
			pendingAge:       10 * time.Minute,
			now:              func() time.Time { return now },
		}
		i.handle(context.TODO())
		require.Equal(t, []string{"app-1", "app-2"}, runner.runs)
		require.Equal(t, now.Add(-10*time.Minute), store.before)
	})
	t.Run(`cancelled context stops the batch`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.TODO())
		cancel()
		runner := &fakeEvaluation{}
		i := impl{
			BaseImpl:         *baseworker.NewInstance("test", 0, time.Minute),
			applicationStore: &fakeApplicationStore{list: []dbmodels.Application{app1, app2}},
			evaluation:       runner,
			now:              func() time.Time { return now },
		}
		i.handle(ctx)
		require.Empty(t, runner.runs)
	})
}
