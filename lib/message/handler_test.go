package message

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	applicationstore "recruit-backend/lib/application/store"
	messagestore "recruit-backend/lib/message/store"
	authutils "recruit-backend/lib/utils/auth-utils"
	"recruit-backend/models"
	messageapimodels "recruit-backend/models/api/message"
	dbmodels "recruit-backend/models/db"
)

type fakeApplicationStore struct {
	applicationstore.Provider
	list map[string]dbmodels.Application
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	rec, ok := f.list[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type fakeMessageStore struct {
	messagestore.Provider
	created     []dbmodels.Message
	countScope  dbmodels.MessageScope
	countTypes  []models.MessageSenderType
	markedScope dbmodels.MessageScope
}

func (f *fakeMessageStore) Create(rec dbmodels.Message) (*dbmodels.Message, error) {
	rec.ID = "msg-1"
	f.created = append(f.created, rec)
	return &rec, nil
}

func (f *fakeMessageStore) CountUnread(scope dbmodels.MessageScope, senderTypes []models.MessageSenderType) (int64, error) {
	f.countScope = scope
	f.countTypes = senderTypes
	return 3, nil
}

func (f *fakeMessageStore) MarkRead(scope dbmodels.MessageScope, ids []string) (int64, error) {
	f.markedScope = scope
	return int64(len(ids)), nil
}

func getInstance(messages *fakeMessageStore) impl {
	application := dbmodels.Application{JobID: "job-1", JobSeekerID: "seeker-1"}
	application.ID = "app-1"
	application.TenantID = "tenant-1"
	return impl{
		messageStore: messages,
		applicationStore: &fakeApplicationStore{list: map[string]dbmodels.Application{
			"app-1": application,
		}},
		now: func() time.Time {
			return time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)
		},
	}
}

func TestSend(t *testing.T) {
	staff := authutils.User{ID: "user-1", Name: "佐藤", TenantID: "tenant-1", Role: models.TenantUserRole}
	seeker := authutils.User{ID: "seeker-1", Role: models.JobSeekerRole}

	t.Run(`staff writes into own tenant`, func(t *testing.T) {
		messages := &fakeMessageStore{}
		view, err := getInstance(messages).Send(staff, messageapimodels.SendMessage{ApplicationID: "app-1", Content: "面接日程について"})
		require.Nil(t, err)
		require.Equal(t, models.SenderCompany, view.SenderType)
		require.Equal(t, "佐藤", view.SenderName)
		require.Len(t, messages.created, 1)
		require.Equal(t, "tenant-1", messages.created[0].TenantID)
		require.False(t, messages.created[0].IsAutoReply)
	})

	t.Run(`job seeker writes into own application`, func(t *testing.T) {
		messages := &fakeMessageStore{}
		view, err := getInstance(messages).Send(seeker, messageapimodels.SendMessage{ApplicationID: "app-1", Content: "よろしくお願いします"})
		require.Nil(t, err)
		require.Equal(t, models.SenderJobSeeker, view.SenderType)
		require.Equal(t, "", view.SenderName)
		require.Equal(t, "tenant-1", messages.created[0].TenantID)
	})

	t.Run(`foreign application`, func(t *testing.T) {
		messages := &fakeMessageStore{}
		other := authutils.User{ID: "seeker-2", Role: models.JobSeekerRole}
		_, err := getInstance(messages).Send(other, messageapimodels.SendMessage{ApplicationID: "app-1", Content: "x"})
		require.True(t, errors.Is(err, authutils.ErrForbidden))

		otherStaff := authutils.User{ID: "user-2", TenantID: "tenant-2", Role: models.TenantUserRole}
		_, err = getInstance(messages).Send(otherStaff, messageapimodels.SendMessage{ApplicationID: "app-1", Content: "x"})
		require.True(t, errors.Is(err, authutils.ErrForbidden))
		require.Empty(t, messages.created)
	})

	t.Run(`missing application`, func(t *testing.T) {
		_, err := getInstance(&fakeMessageStore{}).Send(seeker, messageapimodels.SendMessage{ApplicationID: "app-404", Content: "x"})
		require.True(t, errors.Is(err, authutils.ErrNotFound))
	})
}

func TestUnreadAndRead(t *testing.T) {
	t.Run(`job seeker counts company and system messages`, func(t *testing.T) {
		messages := &fakeMessageStore{}
		count, err := getInstance(messages).UnreadCount(authutils.User{ID: "seeker-1", Role: models.JobSeekerRole})
		require.Nil(t, err)
		require.Equal(t, int64(3), count)
		require.Equal(t, dbmodels.MessageScope{JobSeekerID: "seeker-1"}, messages.countScope)
		require.Equal(t, []models.MessageSenderType{models.SenderCompany, models.SenderSystem}, messages.countTypes)
	})

	t.Run(`staff counts job seeker messages of the tenant`, func(t *testing.T) {
		messages := &fakeMessageStore{}
		_, err := getInstance(messages).UnreadCount(authutils.User{ID: "user-1", TenantID: "tenant-1", Role: models.TenantAdminRole})
		require.Nil(t, err)
		require.Equal(t, dbmodels.MessageScope{TenantID: "tenant-1"}, messages.countScope)
		require.Equal(t, []models.MessageSenderType{models.SenderJobSeeker}, messages.countTypes)
	})

	t.Run(`staff without tenant`, func(t *testing.T) {
		_, err := getInstance(&fakeMessageStore{}).UnreadCount(authutils.User{ID: "user-1", Role: models.TenantUserRole})
		require.True(t, errors.Is(err, authutils.ErrForbidden))
	})

	t.Run(`mark read is scoped`, func(t *testing.T) {
		messages := &fakeMessageStore{}
		count, err := getInstance(messages).MarkRead(authutils.User{ID: "seeker-1", Role: models.JobSeekerRole}, messageapimodels.MarkRead{MessageIDs: []string{"m1", "m2"}})
		require.Nil(t, err)
		require.Equal(t, int64(2), count)
		require.Equal(t, dbmodels.MessageScope{JobSeekerID: "seeker-1"}, messages.markedScope)
	})
}

func TestSenderName(t *testing.T) {
	rec := dbmodels.Message{SenderType: models.SenderCompany}
	require.Equal(t, "担当者", senderName(rec))
	rec.SenderName = "佐藤"
	require.Equal(t, "佐藤", senderName(rec))
	require.Equal(t, "採用担当", senderName(dbmodels.Message{SenderType: models.SenderSystem}))
	require.Equal(t, "", senderName(dbmodels.Message{SenderType: models.SenderJobSeeker}))
}
