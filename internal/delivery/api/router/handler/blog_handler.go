package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"blogpilot/internal/delivery/api/response"
	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BlogHandlerParams holds dependencies for BlogHandler, injected by Fx.
type BlogHandlerParams struct {
	fx.In

	BlogUC usecase.BlogSettingsUsecase
	Logger *slog.Logger
}

// BlogHandler serves the blog list and the settings draft.
type BlogHandler struct {
	blogUC usecase.BlogSettingsUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler
func NewBlogHandler(params BlogHandlerParams) *BlogHandler {
	return &BlogHandler{
		blogUC: params.BlogUC,
		logger: params.Logger,
	}
}

// BlogListView is the list with the current selection.
type BlogListView struct {
	Blogs    []entity.Blog `json:"blogs"`
	Selected *int64        `json:"selected,omitempty"`
}

func (h *BlogHandler) listView(blogs []entity.Blog) BlogListView {
	view := BlogListView{Blogs: blogs}
	if view.Blogs == nil {
		view.Blogs = []entity.Blog{}
	}
	if id, ok := h.blogUC.Selected(); ok {
		view.Selected = &id
	}

	return view
}

// ListBlogs reloads and returns the operator's blogs.
func (h *BlogHandler) ListBlogs(c echo.Context) error {
	blogs, err := h.blogUC.Reload(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, h.listView(blogs))
}

// SelectBlog loads a blog into the draft.
func (h *BlogHandler) SelectBlog(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid blog ID")
	}

	draft, err := h.blogUC.Select(id)
	if err != nil {
		return err
	}

	return response.OK(c, draft)
}

// DeselectBlog resets the draft to a new blog.
func (h *BlogHandler) DeselectBlog(c echo.Context) error {
	return response.OK(c, h.blogUC.Deselect())
}

// GetDraft returns the edit buffer.
func (h *BlogHandler) GetDraft(c echo.Context) error {
	return response.OK(c, h.blogUC.Draft())
}

// UpdateDraft applies a partial edit to the buffer. Nothing is sent to the backend.
func (h *BlogHandler) UpdateDraft(c echo.Context) error {
	var patch entity.DraftPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "Invalid draft input")
	}

	return response.OK(c, h.blogUC.UpdateDraft(patch))
}

// SaveDraft creates or updates the drafted blog.
func (h *BlogHandler) SaveDraft(c echo.Context) error {
	blog, err := h.blogUC.Save(c.Request().Context())
	if err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("Blog saved", slog.Int64("blog_id", blog.ID))

	return response.OK(c, blog)
}

// AnalyzeDraft asks the backend for a category and prompt for the drafted blog.
func (h *BlogHandler) AnalyzeDraft(c echo.Context) error {
	analysis, err := h.blogUC.Analyze(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{
		"analysis": analysis,
		"draft":    h.blogUC.Draft(),
	})
}

// DeleteBlog removes a blog and returns the reloaded list.
func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid blog ID")
	}

	if err := h.blogUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.listView(h.blogUC.Blogs()))
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
