package impl

import (
	"context"
	"log/slog"

	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	session  usecase.SessionUsecase
	credits  usecase.CreditUsecase
	keywords usecase.KeywordUsecase
	schedule usecase.ScheduleUsecase
	blogs    usecase.BlogSettingsUsecase
	posts    service.PostAPI
	logger   *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Session  usecase.SessionUsecase
	Credits  usecase.CreditUsecase
	Keywords usecase.KeywordUsecase
	Schedule usecase.ScheduleUsecase
	Blogs    usecase.BlogSettingsUsecase
	API      service.BackendAPI
	Logger   *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		session:  params.Session,
		credits:  params.Credits,
		keywords: params.Keywords,
		schedule: params.Schedule,
		blogs:    params.Blogs,
		posts:    params.API,
		logger:   params.Logger,
	}
}

// Load fetches every landing view concurrently. Views with a fallback never
// fail; blog and post failures are reported in Errors.
func (srv *dashboardService) Load(ctx context.Context) (entity.UserDashboard, error) {
	dash := entity.UserDashboard{DisplayName: srv.session.Current().DisplayName}

	var blogsErr, postsErr error

	var g errgroup.Group
	g.Go(func() error {
		dash.Credit = srv.credits.Refresh(ctx)

		return nil
	})
	g.Go(func() error {
		dash.Keywords = srv.keywords.Tracking(ctx)

		return nil
	})
	g.Go(func() error {
		dash.Schedule, _ = srv.schedule.Load(ctx)

		return nil
	})
	g.Go(func() error {
		dash.Blogs, blogsErr = srv.blogs.Reload(ctx)

		return nil
	})
	g.Go(func() error {
		dash.Posts, postsErr = srv.posts.PostStatuses(ctx)

		return nil
	})
	_ = g.Wait()

	if err := firstUnauthorized(blogsErr, postsErr); err != nil {
		return entity.UserDashboard{}, err
	}

	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	if blogsErr != nil {
		dash.Errors = append(dash.Errors, "blogs: "+blogsErr.Error())
		log.Warn("Dashboard blogs failed", slog.Any("error", blogsErr))
	}
	if postsErr != nil {
		dash.Errors = append(dash.Errors, "posts: "+postsErr.Error())
		log.Warn("Dashboard posts failed", slog.Any("error", postsErr))
	}
	if dash.Keywords == nil {
		dash.Keywords = []entity.KeywordTrackerRow{}
	}
	if dash.Blogs == nil {
		dash.Blogs = []entity.Blog{}
	}
	if dash.Posts == nil {
		dash.Posts = []entity.PostStatusGroup{}
	}

	return dash, nil
}

// firstUnauthorized picks out a rejected session among section errors.
func firstUnauthorized(errs ...error) error {
	for _, err := range errs {
		if domainerrors.IsUnauthorized(err) {
			return err
		}
	}

	return nil
}
