package impl

import (
	"context"
	"testing"

	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"
	mockService "blogpilot/internal/mocks/service"
	"blogpilot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBlogSettingsService(t *testing.T) (usecase.BlogSettingsUsecase, *mockService.MockBackendAPI) {
	t.Helper()

	api := mockService.NewMockBackendAPI(t)

	return NewBlogSettingsService(BlogSettingsServiceParams{API: api, Logger: newDiscardLogger()}), api
}

func savedBlog(id int64) entity.Blog {
	return entity.Blog{
		ID:           id,
		Alias:        "main",
		PlatformType: entity.PlatformNaver,
		BlogURL:      "https://blog.naver.com/kim",
		BlogID:       "kim",
	}
}

func TestBlogSettingsService_SelectAppliesDefaults(t *testing.T) {
	srv, api := newBlogSettingsService(t)
	ctx := context.Background()

	bare := savedBlog(1)
	custom := savedBlog(2)
	custom.WordRange = &entity.WordRange{Min: 1500, Max: 2500}
	custom.ImageCount = ptr(5)
	custom.Persona = ptr("friendly")

	api.EXPECT().ListBlogs(ctx).Return([]entity.Blog{bare, custom}, nil)
	_, err := srv.Reload(ctx)
	require.NoError(t, err)

	draft, err := srv.Select(1)
	require.NoError(t, err)
	assert.Equal(t, entity.DraftModeEdit, draft.Mode)
	assert.Equal(t, entity.WordRange{Min: 800, Max: 1200}, draft.Settings.WordRange)
	assert.Equal(t, 3, draft.Settings.ImageCount)
	assert.Equal(t, entity.DefaultPersona, draft.Settings.Persona)
	assert.Equal(t, entity.DefaultInterestTopic, draft.Settings.InterestTopic)

	draft, err = srv.Select(2)
	require.NoError(t, err)
	assert.Equal(t, entity.WordRange{Min: 1500, Max: 2500}, draft.Settings.WordRange)
	assert.Equal(t, 5, draft.Settings.ImageCount)
	assert.Equal(t, "friendly", draft.Settings.Persona)

	id, ok := srv.Selected()
	assert.True(t, ok)
	assert.Equal(t, int64(2), id)
}

func TestBlogSettingsService_SelectUnknown(t *testing.T) {
	srv, _ := newBlogSettingsService(t)

	_, err := srv.Select(42)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}

func TestBlogSettingsService_DeselectResetsToDefaults(t *testing.T) {
	srv, api := newBlogSettingsService(t)
	ctx := context.Background()

	api.EXPECT().ListBlogs(ctx).Return([]entity.Blog{savedBlog(1)}, nil)
	_, err := srv.Reload(ctx)
	require.NoError(t, err)
	_, err = srv.Select(1)
	require.NoError(t, err)

	draft := srv.Deselect()

	assert.Equal(t, entity.NewBlogDraft(), draft)
	_, ok := srv.Selected()
	assert.False(t, ok)
}

func TestBlogSettingsService_UpdateDraftClampsWordRange(t *testing.T) {
	srv, _ := newBlogSettingsService(t)

	draft := srv.UpdateDraft(entity.DraftPatch{WordMin: ptr(1500)})
	assert.Equal(t, entity.WordRange{Min: 1200, Max: 1200}, draft.Settings.WordRange)

	draft = srv.UpdateDraft(entity.DraftPatch{WordMax: ptr(500)})
	assert.Equal(t, entity.WordRange{Min: 1200, Max: 1200}, draft.Settings.WordRange)

	draft = srv.UpdateDraft(entity.DraftPatch{WordMax: ptr(3000), Alias: ptr("side")})
	assert.Equal(t, entity.WordRange{Min: 1200, Max: 3000}, draft.Settings.WordRange)
	assert.Equal(t, "side", draft.Identity.Alias)
}

func fillIdentity(srv usecase.BlogSettingsUsecase) {
	srv.UpdateDraft(entity.DraftPatch{
		Alias:         ptr("main"),
		BlogURL:       ptr("https://blog.naver.com/kim"),
		BlogID:        ptr("kim"),
		InterestTopic: ptr("Home Cafe"),
		ImageCount:    ptr(4),
	})
}

func TestBlogSettingsService_SaveNew(t *testing.T) {
	srv, api := newBlogSettingsService(t)
	ctx := context.Background()
	fillIdentity(srv)

	created := savedBlog(7)
	confirmed := savedBlog(7)
	confirmed.InterestTopic = ptr("Home Cafe")
	confirmed.ImageCount = ptr(4)

	api.EXPECT().
		CreateBlog(ctx, mock.MatchedBy(func(id entity.BlogIdentity) bool {
			return id.Alias == "main" && id.BlogID == "kim"
		})).
		Return(&created, nil).Once()
	api.EXPECT().
		UpdateBlogSettings(ctx, int64(7), mock.MatchedBy(func(s entity.BlogSettings) bool {
			return s.InterestTopic == "Home Cafe" && s.ImageCount == 4
		})).
		Return(&confirmed, nil).Once()
	api.EXPECT().ListBlogs(ctx).Return([]entity.Blog{confirmed}, nil).Once()

	blog, err := srv.Save(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), blog.ID)

	draft := srv.Draft()
	assert.Equal(t, entity.DraftModeEdit, draft.Mode)
	assert.Equal(t, int64(7), draft.BlogID)
	assert.Equal(t, "Home Cafe", draft.Settings.InterestTopic)
	assert.Len(t, srv.Blogs(), 1)
}

func TestBlogSettingsService_SaveNewPartialFailure(t *testing.T) {
	srv, api := newBlogSettingsService(t)
	ctx := context.Background()
	fillIdentity(srv)

	created := savedBlog(7)

	api.EXPECT().CreateBlog(ctx, mock.Anything).Return(&created, nil).Once()
	api.EXPECT().UpdateBlogSettings(ctx, int64(7), mock.Anything).Return(nil, errUnavailable).Once()
	api.EXPECT().ListBlogs(ctx).Return([]entity.Blog{created}, nil).Once()

	blog, err := srv.Save(ctx)

	require.Error(t, err)
	var partial *domainerrors.PartialSaveError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, int64(7), partial.BlogID)
	assert.True(t, errors.Is(err, errUnavailable))
	require.NotNil(t, blog)
	assert.Equal(t, int64(7), blog.ID)

	// The list shows the new blog with backend defaults.
	blogs := srv.Blogs()
	require.Len(t, blogs, 1)
	assert.Equal(t, int64(7), blogs[0].ID)
	assert.Nil(t, blogs[0].InterestTopic)
	assert.Nil(t, blogs[0].ImageCount)

	// The buffer keeps the edits and now targets the created blog.
	draft := srv.Draft()
	assert.Equal(t, entity.DraftModeEdit, draft.Mode)
	assert.Equal(t, int64(7), draft.BlogID)
	assert.Equal(t, "Home Cafe", draft.Settings.InterestTopic)

	// Saving again is a single merged update, not a second create.
	updated := savedBlog(7)
	updated.InterestTopic = ptr("Home Cafe")
	api.EXPECT().
		UpdateBlog(ctx, int64(7), mock.MatchedBy(func(u entity.BlogUpdate) bool {
			return u.Alias == "main" && u.InterestTopic == "Home Cafe" && u.ImageCount == 4
		})).
		Return(&updated, nil).Once()
	api.EXPECT().ListBlogs(ctx).Return([]entity.Blog{updated}, nil).Once()

	_, err = srv.Save(ctx)
	require.NoError(t, err)
}

func TestBlogSettingsService_SaveCreateFailure(t *testing.T) {
	srv, api := newBlogSettingsService(t)
	ctx := context.Background()
	fillIdentity(srv)

	api.EXPECT().CreateBlog(ctx, mock.Anything).Return(nil, errUnavailable)

	_, err := srv.Save(ctx)

	require.Error(t, err)
	assert.Equal(t, entity.DraftModeCreate, srv.Draft().Mode)
}

func TestBlogSettingsService_SaveValidation(t *testing.T) {
	srv, _ := newBlogSettingsService(t)

	_, err := srv.Save(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBlogSettingsService_SaveExisting(t *testing.T) {
	srv, api := newBlogSettingsService(t)
	ctx := context.Background()

	api.EXPECT().ListBlogs(ctx).Return([]entity.Blog{savedBlog(3)}, nil).Once()
	_, err := srv.Reload(ctx)
	require.NoError(t, err)
	_, err = srv.Select(3)
	require.NoError(t, err)
	srv.UpdateDraft(entity.DraftPatch{CustomPrompt: ptr("write warmly")})

	updated := savedBlog(3)
	updated.CustomPrompt = ptr("write warmly")
	api.EXPECT().
		UpdateBlog(ctx, int64(3), mock.MatchedBy(func(u entity.BlogUpdate) bool {
			return u.CustomPrompt == "write warmly" && u.BlogURL == "https://blog.naver.com/kim"
		})).
		Return(&updated, nil).Once()
	api.EXPECT().ListBlogs(ctx).Return([]entity.Blog{updated}, nil).Once()

	blog, err := srv.Save(ctx)

	require.NoError(t, err)
	require.NotNil(t, blog.CustomPrompt)
	assert.Equal(t, "write warmly", *blog.CustomPrompt)
	assert.Equal(t, "write warmly", srv.Draft().Settings.CustomPrompt)
}

func TestBlogSettingsService_DeleteSelected(t *testing.T) {
	srv, api := newBlogSettingsService(t)
	ctx := context.Background()

	api.EXPECT().ListBlogs(ctx).Return([]entity.Blog{savedBlog(3), savedBlog(4)}, nil).Once()
	_, err := srv.Reload(ctx)
	require.NoError(t, err)
	_, err = srv.Select(3)
	require.NoError(t, err)

	api.EXPECT().DeleteBlog(ctx, int64(3)).Return(nil)
	api.EXPECT().ListBlogs(ctx).Return([]entity.Blog{savedBlog(4)}, nil).Once()

	require.NoError(t, srv.Delete(ctx, 3))

	_, ok := srv.Selected()
	assert.False(t, ok)
	assert.Equal(t, entity.NewBlogDraft(), srv.Draft())
	assert.Len(t, srv.Blogs(), 1)
}

func TestBlogSettingsService_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("needs a blog or url", func(t *testing.T) {
		srv, _ := newBlogSettingsService(t)

		_, err := srv.Analyze(ctx)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("unsaved url fills the draft", func(t *testing.T) {
		srv, api := newBlogSettingsService(t)
		srv.UpdateDraft(entity.DraftPatch{BlogURL: ptr("https://kim.tistory.com"), Alias: ptr("tistory")})

		api.EXPECT().
			AnalyzeBlog(ctx, entity.BlogAnalysisRequest{BlogURL: "https://kim.tistory.com", Alias: "tistory"}).
			Return(&entity.BlogAnalysis{
				Category: "Travel",
				Prompt:   "```json\n{\"category\": \"Travel\", \"prompt\": \"Write about trips\"}\n```",
			}, nil)

		got, err := srv.Analyze(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Write about trips", got.Prompt)
		assert.Equal(t, "Travel", srv.Draft().Settings.DefaultCategory)
		assert.Equal(t, "Write about trips", srv.Draft().Settings.CustomPrompt)
	})
}

func TestNormalizeAnalysisPrompt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "  ", ""},
		{"plain text", "Write in a calm tone.", "Write in a calm tone."},
		{"fenced json", "```json\n{\"prompt\": \"Use short paragraphs\"}\n```", "Use short paragraphs"},
		{"bare json custom_prompt", `{"custom_prompt": " Add a summary "}`, "Add a summary"},
		{"json without prompt", `{"category": "IT"}`, `{"category": "IT"}`},
		{"broken json", "{not json}", "{not json}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeAnalysisPrompt(tt.in))
		})
	}
}
