package authutils

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
)

func TestApplicationAccess(t *testing.T) {
	application := &dbmodels.Application{JobSeekerID: "seeker-1"}
	application.TenantID = "tenant-1"

	t.Run(`staff of the same tenant`, func(t *testing.T) {
		require.Nil(t, CheckApplicationAccess(User{ID: "u1", TenantID: "tenant-1", Role: models.TenantUserRole}, application))
		require.Nil(t, CheckApplicationAccess(User{ID: "u2", TenantID: "tenant-1", Role: models.TenantAdminRole}, application))
	})

	t.Run(`staff of another tenant`, func(t *testing.T) {
		err := CheckApplicationAccess(User{ID: "u1", TenantID: "tenant-2", Role: models.TenantUserRole}, application)
		require.True(t, errors.Is(err, ErrForbidden))
	})

	t.Run(`staff without tenant`, func(t *testing.T) {
		err := CheckApplicationAccess(User{ID: "u1", Role: models.TenantUserRole}, application)
		require.True(t, errors.Is(err, ErrForbidden))
	})

	t.Run(`system admin`, func(t *testing.T) {
		require.Nil(t, CheckApplicationAccess(User{ID: "admin", Role: models.SystemAdminRole}, application))
	})

	t.Run(`job seeker`, func(t *testing.T) {
		require.Nil(t, CheckApplicationAccess(User{ID: "seeker-1", Role: models.JobSeekerRole}, application))
		err := CheckApplicationAccess(User{ID: "seeker-2", Role: models.JobSeekerRole}, application)
		require.True(t, errors.Is(err, ErrForbidden))
	})

	t.Run(`unknown role`, func(t *testing.T) {
		err := CheckApplicationAccess(User{ID: "x", TenantID: "tenant-1"}, application)
		require.True(t, errors.Is(err, ErrForbidden))
	})

	t.Run(`missing application`, func(t *testing.T) {
		err := CheckApplicationAccess(User{ID: "seeker-1", Role: models.JobSeekerRole}, nil)
		require.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run(`message scope`, func(t *testing.T) {
		require.Equal(t, dbmodels.MessageScope{JobSeekerID: "seeker-1"}, User{ID: "seeker-1", TenantID: "tenant-1", Role: models.JobSeekerRole}.MessageScope())
		require.Equal(t, dbmodels.MessageScope{TenantID: "tenant-1"}, User{ID: "u1", TenantID: "tenant-1", Role: models.TenantUserRole}.MessageScope())
	})
}
