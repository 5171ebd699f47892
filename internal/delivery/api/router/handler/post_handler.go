package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"blogpilot/internal/delivery/api/response"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler serves generated posts and their exported artifacts.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler
func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// ListPosts returns post statuses grouped by blog.
func (h *PostHandler) ListPosts(c echo.Context) error {
	groups, err := h.postUC.Statuses(c.Request().Context())
	if err != nil {
		return err
	}
	if groups == nil {
		groups = []entity.PostStatusGroup{}
	}

	return response.OK(c, groups)
}

// PublishPost publishes a generated post.
func (h *PostHandler) PublishPost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	result, err := h.postUC.Publish(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, result)
}

// TrackPost starts rank tracking for a post.
func (h *PostHandler) TrackPost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	result, err := h.postUC.Track(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, result)
}

// ExportPost downloads a post artifact into the artifact bucket.
func (h *PostHandler) ExportPost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid post ID")
	}

	artifact, err := h.postUC.Export(c.Request().Context(), id, entity.DownloadKind(c.Param("kind")))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, artifact)
}

// GetArtifact streams a stored artifact.
func (h *PostHandler) GetArtifact(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" {
		return response.BadRequest(c, "INVALID_KEY", "Artifact key is required")
	}

	data, err := h.postUC.Artifact(c.Request().Context(), key)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, http.DetectContentType(data), data)
}
