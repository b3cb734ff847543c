package post

import (
	"net/http"
	"sportshub/infras/otel"
	"sportshub/internal/domains/post/model/dto"
	"sportshub/internal/domains/post/service"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/validator"
	"sportshub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	PathNews          = "/news"
	PathAnnouncements = "/announcements"
)

// Handler serves one editorial feed. News and announcements mount the same handler on different paths.
type Handler struct {
	path    string
	service service.Post
	otel    otel.Otel
}

type News struct{ Handler }

type Announcements struct{ Handler }

func New(path string, service service.Post, otel otel.Otel) Handler {
	return Handler{
		path:    path,
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route(handler.path, func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePost)
		routerGroup.Get("/", handler.GetPosts)
		routerGroup.Get("/{id}", handler.GetPostByID)
		routerGroup.Put("/{id}", handler.UpdatePost)
		routerGroup.Delete("/{id}", handler.DeletePost)
	})
}

func (handler *Handler) scopeName(op string) string {
	return constant.OtelHandlerScopeName + handler.path + "." + op
}

// CreatePost publishes a news item or announcement.
// @Summary Create a news item or announcement
// @Tags Post
// @Accept json
// @Produce json
// @Param request body dto.CreatePostRequest true "Create Post Request"
// @Success 201 {object} response.Data[dto.PostResponse] "Post created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/news [post]
// @Router /v1/announcements [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.scopeName("CreatePost"))
	defer scope.End()

	req := dto.CreatePostRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("path", handler.path).Msg("failed to create post")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPosts lists posts, newest first.
// @Summary Get news items or announcements
// @Tags Post
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPostsResponse] "List of posts"
// @Failure 500 {object} response.Error
// @Router /v1/news [get]
// @Router /v1/announcements [get]
func (handler *Handler) GetPosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.scopeName("GetPosts"))
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	posts, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("path", handler.path).Msg("failed to get posts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, posts)
}

// GetPostByID retrieves a single post.
// @Summary Get a news item or announcement by ID
// @Tags Post
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Data[dto.PostResponse] "Post details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/news/{id} [get]
// @Router /v1/announcements/{id} [get]
func (handler *Handler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.scopeName("GetPostByID"))
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	post, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("path", handler.path).Msg("failed to get post by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, post)
}

// UpdatePost edits a post. A new image replaces the stored one.
// @Summary Update a news item or announcement
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body dto.UpdatePostRequest true "Update Post Request"
// @Success 200 {object} response.Data[dto.PostResponse] "Post updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/news/{id} [put]
// @Router /v1/announcements/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.scopeName("UpdatePost"))
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePostRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("path", handler.path).Msg("failed to update post")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeletePost removes a post and its image.
// @Summary Delete a news item or announcement
// @Tags Post
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} response.Message "Deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/news/{id} [delete]
// @Router /v1/announcements/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.scopeName("DeletePost"))
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("path", handler.path).Msg("failed to delete post")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Deleted successfully")
}
