package service

import (
	"context"
	"fmt"
	"sportshub/config"
	"sportshub/infras/otel"
	"sportshub/infras/s3"
	"sportshub/internal/domains/post/model"
	"sportshub/internal/domains/post/model/dto"
	"sportshub/internal/domains/post/repository"
	"sportshub/shared"
	"sportshub/shared/cache"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"
	"sportshub/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Post manages one editorial feed, news or announcements.
type Post interface {
	Create(ctx context.Context, req dto.CreatePostRequest) (dto.PostResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetPostsResponse, error)
	Get(ctx context.Context, id string) (dto.PostResponse, error)
	Update(ctx context.Context, req dto.UpdatePostRequest, id string) (dto.PostResponse, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type serviceImpl struct {
	kind    model.Kind
	repo    repository.Post
	storage s3.Storage
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(kind model.Kind, repo repository.Post, storage s3.Storage, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Post {
	return &serviceImpl{
		kind:    kind,
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) span(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelServiceScopeName, s.kind, op)
}

func (s *serviceImpl) cacheGet() string {
	return string(s.kind) + ":get"
}

func (s *serviceImpl) cacheGetAll() string {
	return string(s.kind) + ":gets"
}

func (s *serviceImpl) notFound() error {
	return failure.NotFound(string(s.kind) + " not found") // nolint:wrapcheck
}

func (s *serviceImpl) upload(ctx context.Context, image string) (string, error) {
	if image == "" {
		return constant.Empty, nil
	}

	url, err := s3.UploadDataURI(ctx, s.storage, s.kind.Collection(), image)
	if err != nil {
		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to upload image")

		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) removeImage(ctx context.Context, url string) {
	if url == "" {
		return
	}

	if err := s.storage.Delete(context.WithoutCancel(ctx), url); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to remove image")
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePostRequest) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.span("Create"))
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)

	imagePath, err := s.upload(ctx, req.Image)
	if err != nil {
		return res, err
	}

	post, err := req.ToModel(user, imagePath, timezone.Now())
	if err != nil {
		s.removeImage(ctx, imagePath)

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, post)
	if err != nil {
		s.removeImage(ctx, imagePath)

		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to create post")

		return res, fmt.Errorf("failed to create %s: %w", s.kind, err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, s.cacheGetAll())
	}()

	res.FromModel(post)
	res.ID = id

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.span("GetAll"))
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(s.cacheGetAll(), params, gDto.FilterGroup{})

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to count posts")

		return res, fmt.Errorf("failed to count %s: %w", s.kind, err)
	}

	posts, err := s.repo.GetAll(ctx, params)
	if err != nil {
		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to get posts")

		return res, fmt.Errorf("failed to get %s: %w", s.kind, err)
	}

	res.FromModels(posts, total, params.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save posts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.span("Get"))
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(s.cacheGet(), id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	post, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to get post")

		return res, fmt.Errorf("failed to get %s: %w", s.kind, err)
	}

	if post.ID.IsZero() {
		return res, s.notFound()
	}

	res.FromModel(post)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save post to cache")
		}
	}()

	return res, nil
}

// Update patches the given fields. A new image replaces the stored one.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePostRequest, id string) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.span("Update"))
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdatePostRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := shared.UserFromContext(ctx)

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to get post")

		return res, fmt.Errorf("failed to get %s: %w", s.kind, err)
	}

	if current.ID.IsZero() {
		return res, s.notFound()
	}

	imagePath, err := s.upload(ctx, req.Image)
	if err != nil {
		return res, err
	}

	fields, err := req.Fields(user, imagePath, timezone.Now())
	if err != nil {
		s.removeImage(ctx, imagePath)

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, id, fields); err != nil {
		s.removeImage(ctx, imagePath)

		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to update post")

		return res, fmt.Errorf("failed to update %s: %w", s.kind, err)
	}

	if imagePath != "" {
		s.removeImage(ctx, current.ImagePath)
	}

	s.invalidate(ctx, id)

	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to reload post")

		return res, fmt.Errorf("failed to get %s: %w", s.kind, err)
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.span("Delete"))
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to get post")

		return fmt.Errorf("failed to get %s: %w", s.kind, err)
	}

	if current.ID.IsZero() {
		return s.notFound()
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to delete post")

		return fmt.Errorf("failed to delete %s: %w", s.kind, err)
	}

	s.removeImage(ctx, current.ImagePath)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Count(ctx context.Context) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.span("Count"))
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err = s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Str("kind", string(s.kind)).Msg("failed to count posts")

		return 0, fmt.Errorf("failed to count %s: %w", s.kind, err)
	}

	return total, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(s.cacheGet(), id)); err != nil {
			log.Error().Err(err).Msg("failed to delete post cache")
		}

		shared.InvalidateCaches(c, s.cache, s.cacheGetAll())
	}()
}
