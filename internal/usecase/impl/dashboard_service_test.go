package impl

import (
	"context"
	"testing"

	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	mockService "blogpilot/internal/mocks/service"
	mockUsecase "blogpilot/internal/mocks/usecase"
	"blogpilot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardFixture struct {
	srv      usecase.DashboardUsecase
	session  *mockUsecase.MockSessionUsecase
	credits  *mockUsecase.MockCreditUsecase
	keywords *mockUsecase.MockKeywordUsecase
	schedule *mockUsecase.MockScheduleUsecase
	blogs    *mockUsecase.MockBlogSettingsUsecase
	api      *mockService.MockBackendAPI
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	session := mockUsecase.NewMockSessionUsecase(t)
	credits := mockUsecase.NewMockCreditUsecase(t)
	keywords := mockUsecase.NewMockKeywordUsecase(t)
	schedule := mockUsecase.NewMockScheduleUsecase(t)
	blogs := mockUsecase.NewMockBlogSettingsUsecase(t)
	api := mockService.NewMockBackendAPI(t)

	srv := NewDashboardService(DashboardServiceParams{
		Session:  session,
		Credits:  credits,
		Keywords: keywords,
		Schedule: schedule,
		Blogs:    blogs,
		API:      api,
		Logger:   newDiscardLogger(),
	})

	return &dashboardFixture{
		srv:      srv,
		session:  session,
		credits:  credits,
		keywords: keywords,
		schedule: schedule,
		blogs:    blogs,
		api:      api,
	}
}

func TestDashboardService_Load(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)

	f.session.EXPECT().Current().Return(entity.Session{Token: "tok", DisplayName: "kim"})
	f.credits.EXPECT().Refresh(ctx).Return(entity.FallbackCreditStatus())
	f.keywords.EXPECT().Tracking(ctx).Return(nil)
	f.schedule.EXPECT().Load(ctx).Return(entity.DefaultSchedule(), false)
	f.blogs.EXPECT().Reload(ctx).Return(nil, errUnavailable)
	f.api.EXPECT().PostStatuses(ctx).Return([]entity.PostStatusGroup{{BlogAlias: "main"}}, nil)

	dash, err := f.srv.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, "kim", dash.DisplayName)
	assert.True(t, dash.Credit.Degraded)
	assert.NotNil(t, dash.Keywords)
	assert.Equal(t, entity.DefaultSchedule(), dash.Schedule)
	assert.NotNil(t, dash.Blogs)
	require.Len(t, dash.Posts, 1)
	require.Len(t, dash.Errors, 1)
	assert.Contains(t, dash.Errors[0], "blogs")
}

func TestDashboardService_LoadRejectedSession(t *testing.T) {
	ctx := context.Background()
	f := newDashboardFixture(t)

	f.session.EXPECT().Current().Return(entity.Session{Token: "expired"}).Maybe()
	f.credits.EXPECT().Refresh(ctx).Return(entity.FallbackCreditStatus())
	f.keywords.EXPECT().Tracking(ctx).Return(nil)
	f.schedule.EXPECT().Load(ctx).Return(entity.DefaultSchedule(), false)
	f.blogs.EXPECT().Reload(ctx).Return(nil, errRejected)
	f.api.EXPECT().PostStatuses(ctx).Return(nil, errUnavailable)

	_, err := f.srv.Load(ctx)

	require.Error(t, err)
	assert.True(t, domainerrors.IsUnauthorized(err))
}
