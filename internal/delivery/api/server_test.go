package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"blogpilot/config"
	apimiddleware "blogpilot/internal/delivery/api/middleware"
	"blogpilot/internal/delivery/api/response"
	"blogpilot/internal/delivery/api/router"
	"blogpilot/internal/delivery/api/router/handler"
	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"
	"blogpilot/internal/infra/persistence/file"
	mockService "blogpilot/internal/mocks/service"
	mockUsecase "blogpilot/internal/mocks/usecase"
	"blogpilot/internal/usecase"
	"blogpilot/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type consoleMocks struct {
	auth       *mockUsecase.MockAuthUsecase
	session    *mockUsecase.MockSessionUsecase
	dashboard  *mockUsecase.MockDashboardUsecase
	blogs      *mockUsecase.MockBlogSettingsUsecase
	generation *mockUsecase.MockGenerationUsecase
	credits    *mockUsecase.MockCreditUsecase
	schedule   *mockUsecase.MockScheduleUsecase
	posts      *mockUsecase.MockPostUsecase
	keywords   *mockUsecase.MockKeywordUsecase
	admin      *mockUsecase.MockAdminUsecase
}

func newConsoleMocks(t *testing.T) *consoleMocks {
	t.Helper()

	return &consoleMocks{
		auth:       mockUsecase.NewMockAuthUsecase(t),
		session:    mockUsecase.NewMockSessionUsecase(t),
		dashboard:  mockUsecase.NewMockDashboardUsecase(t),
		blogs:      mockUsecase.NewMockBlogSettingsUsecase(t),
		generation: mockUsecase.NewMockGenerationUsecase(t),
		credits:    mockUsecase.NewMockCreditUsecase(t),
		schedule:   mockUsecase.NewMockScheduleUsecase(t),
		posts:      mockUsecase.NewMockPostUsecase(t),
		keywords:   mockUsecase.NewMockKeywordUsecase(t),
		admin:      mockUsecase.NewMockAdminUsecase(t),
	}
}

func newTestConsole(
	t *testing.T,
	m *consoleMocks,
	session usecase.SessionUsecase,
	auth usecase.AuthUsecase,
) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	logger := slog.New(slog.DiscardHandler)

	return NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Session: session,
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AuthUC: auth, SessionUC: session, Logger: logger,
			}),
			DashboardHandler: handler.NewDashboardHandler(m.dashboard),
			BlogHandler:      handler.NewBlogHandler(handler.BlogHandlerParams{BlogUC: m.blogs, Logger: logger}),
			GenerationHandler: handler.NewGenerationHandler(handler.GenerationHandlerParams{
				GenerationUC: m.generation, BlogUC: m.blogs, Logger: logger,
			}),
			CreditHandler: handler.NewCreditHandler(handler.CreditHandlerParams{
				CreditUC: m.credits, BlogUC: m.blogs, Logger: logger,
			}),
			ScheduleHandler: handler.NewScheduleHandler(handler.ScheduleHandlerParams{ScheduleUC: m.schedule, Logger: logger}),
			PostHandler:     handler.NewPostHandler(handler.PostHandlerParams{PostUC: m.posts, Logger: logger}),
			KeywordHandler:  handler.NewKeywordHandler(handler.KeywordHandlerParams{KeywordUC: m.keywords, Logger: logger}),
			AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: m.admin, Logger: logger}),
			SessionGate:     apimiddleware.NewSessionGate(session),
			Config:          cfg,
		},
	})
}

// newMockedConsole wires every use case, including the session, as a mock.
func newMockedConsole(t *testing.T) (*echo.Echo, *consoleMocks) {
	t.Helper()

	m := newConsoleMocks(t)

	return newTestConsole(t, m, m.session, m.auth), m
}

func loggedIn(m *consoleMocks) {
	m.session.EXPECT().Current().Return(entity.Session{Token: "tok", DisplayName: "a"}).Maybe()
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()

	var body struct {
		Error response.ErrorBody `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestConsole_HealthIsPublic(t *testing.T) {
	e, _ := newMockedConsole(t)

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestConsole_ProtectedRoutesRedirectWithoutSession(t *testing.T) {
	e, m := newMockedConsole(t)
	m.session.EXPECT().Current().Return(entity.Session{})

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/"},
		{http.MethodGet, "/credits"},
		{http.MethodPost, "/generation"},
		{http.MethodGet, "/admin"},
	} {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := serve(e, tc.method, tc.target, "")

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestConsole_LogoutThenProtectedRouteRedirectsBeforeAnyAPICall(t *testing.T) {
	m := newConsoleMocks(t)
	logger := slog.New(slog.DiscardHandler)

	repo, err := file.NewSessionRepository(filepath.Join(t.TempDir(), "session.json"), "")
	require.NoError(t, err)
	session := impl.NewSessionService(repo, nil, logger)

	// No expectation beyond Login: any other backend call fails the test.
	api := mockService.NewMockBackendAPI(t)
	api.EXPECT().
		Login(mock.Anything, entity.Credentials{Email: "a@b.com", Password: "pw"}).
		Return(&entity.TokenResponse{AccessToken: "tok"}, nil)
	auth := impl.NewAuthService(impl.AuthServiceParams{API: api, Session: session, Logger: logger})

	e := newTestConsole(t, m, session, auth)

	rec := serve(e, http.MethodPost, "/login", `{"email":"a@b.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"display_name":"a"`)
	assert.NotContains(t, rec.Body.String(), "tok")

	rec = serve(e, http.MethodPost, "/logout", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	rec = serve(e, http.MethodGet, "/credits", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, session.Token())
}

func TestConsole_LoginPageSendsAuthenticatedOperatorHome(t *testing.T) {
	e, m := newMockedConsole(t)
	m.session.EXPECT().IsAuthenticated().Return(true)

	rec := serve(e, http.MethodGet, "/login", "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestConsole_BackendUnauthorizedClearsSession(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	m.credits.EXPECT().History(mock.Anything).Return(nil,
		domainerrors.NewAPIError(domainerrors.KindUnauthorized, "GET /credit/history", http.StatusUnauthorized, "expired", nil))
	m.session.EXPECT().Logout(mock.Anything).Return(nil)

	rec := serve(e, http.MethodGet, "/credits/history", "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestConsole_WrongPasswordShowsBackendMessage(t *testing.T) {
	e, m := newMockedConsole(t)
	m.auth.EXPECT().Login(mock.Anything, mock.Anything).Return(entity.Session{},
		domainerrors.NewAPIError(domainerrors.KindUnauthorized, "POST /auth/login", http.StatusUnauthorized, "Incorrect email or password", nil))

	rec := serve(e, http.MethodPost, "/login", `{"email":"kim@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	info := decodeError(t, rec)
	assert.Equal(t, "BACKEND_unauthorized", info.Code)
	assert.Equal(t, "Incorrect email or password", info.Message)
}

func TestConsole_ExpiredTokenOnDashboardRedirects(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	m.dashboard.EXPECT().Load(mock.Anything).Return(entity.UserDashboard{},
		domainerrors.NewAPIError(domainerrors.KindUnauthorized, "GET /blogs", http.StatusUnauthorized, "expired", nil))
	m.session.EXPECT().Logout(mock.Anything).Return(nil)

	rec := serve(e, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestConsole_DashboardKeepsSectionErrors(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	m.dashboard.EXPECT().Load(mock.Anything).Return(entity.UserDashboard{
		DisplayName: "a",
		Errors:      []string{"posts: GET /posts/status: status: boom"},
	}, nil)

	rec := serve(e, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "posts: GET /posts/status")
}

func TestConsole_BackendFailureMapsToGateway(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	m.posts.EXPECT().Statuses(mock.Anything).Return(nil,
		domainerrors.NewAPIError(domainerrors.KindStatus, "GET /posts/status", http.StatusInternalServerError, "boom", nil))

	rec := serve(e, http.MethodGet, "/posts", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "BACKEND_status", info.Code)
	assert.Nil(t, info.Details)
}

func TestConsole_ValidationErrorKeepsDetails(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	m.schedule.EXPECT().Save(mock.Anything, mock.Anything).Return(entity.ScheduleConfig{},
		errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("posts_per_day"), "validate input"))

	rec := serve(e, http.MethodPut, "/schedule", `{"frequency":"daily","posts_per_day":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.Equal(t, "posts_per_day", info.Details)
}

func TestConsole_PartialSaveReportsBlogID(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	blog := &entity.Blog{ID: 7, Alias: "main"}
	m.blogs.EXPECT().Save(mock.Anything).Return(blog, domainerrors.NewPartialSaveError(7, errors.New("settings rejected")))

	rec := serve(e, http.MethodPost, "/blogs/draft/save", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "PARTIAL_SAVE", info.Code)
	assert.Equal(t, map[string]any{"blog_id": float64(7)}, info.Details)
}

func TestConsole_StartGenerationUsesDraft(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	draft := entity.NewBlogDraft()
	m.blogs.EXPECT().Draft().Return(draft)
	job := entity.GenerationJob{ID: uuid.New(), Status: entity.JobStatusProcessing, FreeTrial: true}
	m.generation.EXPECT().
		Start(mock.Anything, entity.GenerationRequestFromDraft(draft, true)).
		Return(job, nil)

	rec := serve(e, http.MethodPost, "/generation", `{"free_trial":true}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), job.ID.String())
}

func TestConsole_UnknownJob(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	id := uuid.New()
	m.generation.EXPECT().Job(id).Return(entity.GenerationJob{}, errors.WithStack(domainerrors.ErrJobNotFound))

	rec := serve(e, http.MethodGet, "/generation/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "JOB_NOT_FOUND", decodeError(t, rec).Code)

	rec = serve(e, http.MethodGet, "/generation/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConsole_WaitReturnsSnapshotWhenInterrupted(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	id := uuid.New()
	snapshot := entity.GenerationJob{ID: id, Status: entity.JobStatusProcessing}
	m.generation.EXPECT().Wait(mock.Anything, id).Return(snapshot, errors.WithStack(context.Canceled))

	rec := serve(e, http.MethodGet, "/generation/"+id.String()+"?wait=true", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"processing"`)
}

func TestConsole_EstimateFollowsDraft(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	draft := entity.NewBlogDraft()
	m.blogs.EXPECT().Draft().Return(draft)
	m.credits.EXPECT().Estimate(5, draft.Settings.WordRange).Return(11)
	m.credits.EXPECT().Current().Return(entity.FallbackCreditStatus())

	rec := serve(e, http.MethodGet, "/credits/estimate?image_count=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data handler.EstimateView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 11, body.Data.Credits)
	assert.Equal(t, 5, body.Data.ImageCount)
	assert.True(t, body.Data.Balance.Degraded)

	rec = serve(e, http.MethodGet, "/credits/estimate?image_count=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConsole_ArtifactKey(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	m.posts.EXPECT().Artifact(mock.Anything, "posts/3/qrcode.png").Return([]byte("\x89PNG\r\n\x1a\n"), nil)

	rec := serve(e, http.MethodGet, "/artifacts/posts/3/qrcode.png", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestConsole_UnhandledErrorIsGeneric(t *testing.T) {
	e, m := newMockedConsole(t)
	loggedIn(m)
	m.keywords.EXPECT().Search(mock.Anything, "seo").Return(nil, errors.New("disk on fire"))

	rec := serve(e, http.MethodGet, "/keywords/search?seed=seo", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
}
