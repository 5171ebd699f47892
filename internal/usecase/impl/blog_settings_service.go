package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"
	"blogpilot/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// blogSettingsService implements the BlogSettingsUsecase interface.
// The lock guards local state only; it is never held across a backend call.
type blogSettingsService struct {
	api      service.BlogAPI
	validate *validator.Validate
	logger   *slog.Logger

	mu       sync.Mutex
	blogs    []entity.Blog
	selected int64
	draft    entity.BlogDraft
}

// BlogSettingsServiceParams holds dependencies for BlogSettingsService, injected by Fx.
type BlogSettingsServiceParams struct {
	fx.In

	API    service.BackendAPI
	Logger *slog.Logger
}

// NewBlogSettingsService is the constructor for blogSettingsService.
func NewBlogSettingsService(params BlogSettingsServiceParams) usecase.BlogSettingsUsecase {
	return &blogSettingsService{
		api:      params.API,
		validate: newValidator(),
		logger:   params.Logger,
		draft:    entity.NewBlogDraft(),
	}
}

func (srv *blogSettingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reload replaces the cached list with the server's. A selected blog that no
// longer exists is deselected.
func (srv *blogSettingsService) Reload(ctx context.Context) ([]entity.Blog, error) {
	blogs, err := srv.api.ListBlogs(ctx)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.blogs = blogs
	if srv.selected != 0 && srv.indexLocked(srv.selected) < 0 {
		srv.selected = 0
		srv.draft = entity.NewBlogDraft()
	}

	return slices.Clone(blogs), nil
}

// Blogs returns the cached list.
func (srv *blogSettingsService) Blogs() []entity.Blog {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return slices.Clone(srv.blogs)
}

// Selected returns the selected blog id.
func (srv *blogSettingsService) Selected() (int64, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.selected, srv.selected != 0
}

// Select loads the blog's server state into the edit buffer.
func (srv *blogSettingsService) Select(id int64) (entity.BlogDraft, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	idx := srv.indexLocked(id)
	if idx < 0 {
		return srv.draft, errors.Wrapf(domainerrors.ErrBlogNotFound, "blog %d", id)
	}

	srv.selected = id
	srv.draft = entity.DraftFromBlog(&srv.blogs[idx])

	return srv.draft, nil
}

// Deselect switches to create mode with a default buffer.
func (srv *blogSettingsService) Deselect() entity.BlogDraft {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.selected = 0
	srv.draft = entity.NewBlogDraft()

	return srv.draft
}

// Draft returns the edit buffer.
func (srv *blogSettingsService) Draft() entity.BlogDraft {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.draft
}

// UpdateDraft merges a partial edit into the buffer.
func (srv *blogSettingsService) UpdateDraft(patch entity.DraftPatch) entity.BlogDraft {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	patch.Apply(&srv.draft)

	return srv.draft
}

// Save pushes the buffer to the server. New blogs take two calls because the
// create schema rejects settings fields.
func (srv *blogSettingsService) Save(ctx context.Context) (*entity.Blog, error) {
	draft := srv.Draft()

	draft.Identity.Alias = strings.TrimSpace(draft.Identity.Alias)
	draft.Identity.BlogURL = strings.TrimSpace(draft.Identity.BlogURL)
	draft.Identity.BlogID = strings.TrimSpace(draft.Identity.BlogID)
	if err := srv.validate.Struct(draft.Identity); err != nil {
		return nil, validationError(err)
	}
	if err := srv.validate.Struct(draft.Settings); err != nil {
		return nil, validationError(err)
	}

	if draft.Mode == entity.DraftModeEdit && draft.BlogID != 0 {
		return srv.saveExisting(ctx, draft)
	}

	return srv.saveNew(ctx, draft)
}

func (srv *blogSettingsService) saveNew(ctx context.Context, draft entity.BlogDraft) (*entity.Blog, error) {
	created, err := srv.api.CreateBlog(ctx, draft.Identity)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Blog created", slog.Int64("blog_id", created.ID))

	_, settingsErr := srv.api.UpdateBlogSettings(ctx, created.ID, draft.Settings)
	if settingsErr != nil {
		srv.log(ctx).Error("Blog settings were not saved",
			slog.Int64("blog_id", created.ID),
			slog.Any("error", settingsErr),
		)
	}

	// The reload runs on both outcomes so a half-created blog shows up with
	// backend defaults. The buffer keeps the operator's edits and switches to
	// edit mode, so saving again issues a single update.
	blog, reloadErr := srv.afterSave(ctx, created.ID, draft, settingsErr == nil)
	if blog == nil {
		blog = created
	}
	if settingsErr != nil {
		return blog, domainerrors.NewPartialSaveError(created.ID, settingsErr)
	}
	if reloadErr != nil {
		return blog, errors.Wrap(reloadErr, "blog saved but the list could not be reloaded")
	}

	return blog, nil
}

func (srv *blogSettingsService) saveExisting(ctx context.Context, draft entity.BlogDraft) (*entity.Blog, error) {
	updated, err := srv.api.UpdateBlog(ctx, draft.BlogID, entity.BlogUpdate{
		BlogIdentity: draft.Identity,
		BlogSettings: draft.Settings,
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Blog updated", slog.Int64("blog_id", draft.BlogID))

	blog, reloadErr := srv.afterSave(ctx, draft.BlogID, draft, true)
	if blog == nil {
		blog = updated
	}
	if reloadErr != nil {
		return blog, errors.Wrap(reloadErr, "blog saved but the list could not be reloaded")
	}

	return blog, nil
}

// afterSave reloads the list and selects the saved blog. When adopt is set the
// buffer is rebuilt from the server entity; otherwise the local edits are kept.
func (srv *blogSettingsService) afterSave(ctx context.Context, id int64, draft entity.BlogDraft, adopt bool) (*entity.Blog, error) {
	blogs, err := srv.api.ListBlogs(ctx)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err == nil {
		srv.blogs = blogs
	}

	srv.selected = id
	draft.Mode = entity.DraftModeEdit
	draft.BlogID = id
	srv.draft = draft

	idx := srv.indexLocked(id)
	if idx < 0 {
		return nil, err
	}

	blog := srv.blogs[idx]
	if adopt {
		srv.draft = entity.DraftFromBlog(&blog)
	}

	return &blog, err
}

// Delete removes a blog, reloads the list and deselects it if it was selected.
func (srv *blogSettingsService) Delete(ctx context.Context, id int64) error {
	if err := srv.api.DeleteBlog(ctx, id); err != nil {
		return err
	}
	srv.log(ctx).Info("Blog deleted", slog.Int64("blog_id", id))

	srv.mu.Lock()
	if srv.selected == id {
		srv.selected = 0
		srv.draft = entity.NewBlogDraft()
	}
	srv.mu.Unlock()

	_, err := srv.Reload(ctx)

	return err
}

// Analyze asks the backend for a category and prompt for the selected blog,
// or for the drafted URL when nothing is selected. The result is applied to
// the buffer.
func (srv *blogSettingsService) Analyze(ctx context.Context) (*entity.BlogAnalysis, error) {
	draft := srv.Draft()

	req := entity.BlogAnalysisRequest{}
	switch {
	case draft.Mode == entity.DraftModeEdit && draft.BlogID != 0:
		req.BlogID = draft.BlogID
	case strings.TrimSpace(draft.Identity.BlogURL) != "":
		req.BlogURL = strings.TrimSpace(draft.Identity.BlogURL)
		req.Alias = strings.TrimSpace(draft.Identity.Alias)
	default:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("select a blog or enter its URL"), "analyze blog")
	}

	analysis, err := srv.api.AnalyzeBlog(ctx, req)
	if err != nil {
		return nil, err
	}
	analysis.Prompt = normalizeAnalysisPrompt(analysis.Prompt)

	srv.mu.Lock()
	if srv.draft.BlogID == draft.BlogID && srv.draft.Mode == draft.Mode {
		if analysis.Category != "" {
			srv.draft.Settings.DefaultCategory = analysis.Category
		}
		if analysis.Prompt != "" {
			srv.draft.Settings.CustomPrompt = analysis.Prompt
		}
	}
	srv.mu.Unlock()

	return analysis, nil
}

func (srv *blogSettingsService) indexLocked(id int64) int {
	return slices.IndexFunc(srv.blogs, func(b entity.Blog) bool { return b.ID == id })
}

var codeFence = regexp.MustCompile("(?i)^```(json)?")

// normalizeAnalysisPrompt recovers the prompt when the backend returns the
// whole JSON answer, possibly fenced, in the prompt field.
func normalizeAnalysisPrompt(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	stripped := codeFence.ReplaceAllString(text, "")
	start := strings.Index(stripped, "{")
	end := strings.LastIndex(stripped, "}")
	if start < 0 || end <= start {
		return text
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(stripped[start:end+1]), &obj); err != nil {
		return text
	}
	for _, key := range []string{"prompt", "custom_prompt"} {
		if p, ok := obj[key].(string); ok && strings.TrimSpace(p) != "" {
			return strings.TrimSpace(p)
		}
	}

	return text
}
