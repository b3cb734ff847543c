package service

import (
	"context"
	"fmt"
	"sportshub/config"
	"sportshub/infras/otel"
	"sportshub/infras/s3"
	"sportshub/internal/domains/sport/model"
	"sportshub/internal/domains/sport/model/dto"
	"sportshub/internal/domains/sport/repository"
	"sportshub/shared"
	"sportshub/shared/cache"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSport    = "sport:get"
	cacheGetAllSport = "sport:gets"

	imageDirectory = "sports"
)

type Sport interface {
	Create(ctx context.Context, req dto.CreateSportRequest) (dto.SportResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSportsResponse, error)
	ListApproved(ctx context.Context) (dto.GetSportsResponse, error)
	ListPending(ctx context.Context) (dto.GetSportsResponse, error)
	ListMine(ctx context.Context) (dto.GetSportsResponse, error)
	Get(ctx context.Context, id string) (dto.SportResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateSportStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Sport
	storage s3.Storage
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Sport, storage s3.Storage, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Sport {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func byStatus(status string) gDto.Filter {
	return gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName}
}

func byName() gDto.QueryParams {
	return gDto.QueryParams{Sorts: []gDto.Sort{{Table: model.TableName, Field: model.FieldName, Dir: gDto.SortDirAsc}}}
}

// Create records a coach's request for a new sport. It stays Pending until an admin decides.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSportRequest) (res dto.SportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sport.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	coachID, _ := shared.UserFromContext(ctx)

	exists, err := s.repo.Exist(ctx, shared.FilterByField(model.FieldName, req.Name, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check sport name")

		return res, fmt.Errorf("failed to check sport name: %w", err)
	}

	if exists {
		return res, failure.Conflict("sport already exists") // nolint:wrapcheck
	}

	var imageURL *string

	if req.Image != "" {
		url, err := s3.UploadDataURI(ctx, s.storage, imageDirectory, req.Image)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload sport image")

			return res, fmt.Errorf("failed to upload sport image: %w", err)
		}

		imageURL = &url
	}

	sport := req.ToModel(coachID, imageURL)

	if err = s.repo.Insert(ctx, sport); err != nil {
		s.removeImage(ctx, imageURL)

		if shared.IsUniqueViolation(err) {
			return res, failure.Conflict("sport already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create sport")

		return res, fmt.Errorf("failed to create sport: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSport)
	}()

	res.FromModel(sport)

	return res, nil
}

func (s *serviceImpl) removeImage(ctx context.Context, imageURL *string) {
	if imageURL == nil {
		return
	}

	if err := s.storage.Delete(context.WithoutCancel(ctx), *imageURL); err != nil {
		log.Error().Err(err).Str("url", *imageURL).Msg("failed to remove sport image")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSportsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sport.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, req, filter)
}

func (s *serviceImpl) ListApproved(ctx context.Context) (res dto.GetSportsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sport.ListApproved")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, byName(), gDto.And(byStatus(constant.StatusApproved)))
}

func (s *serviceImpl) ListPending(ctx context.Context) (res dto.GetSportsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sport.ListPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, byName(), gDto.And(byStatus(constant.StatusPending)))
}

// ListMine returns the caller's approved sports, the ones a coach may schedule and build teams for.
func (s *serviceImpl) ListMine(ctx context.Context) (res dto.GetSportsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sport.ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	coachID, _ := shared.UserFromContext(ctx)

	return s.list(ctx, byName(), gDto.And(
		byStatus(constant.StatusApproved),
		gDto.Filter{Field: model.FieldCoachID, Value: coachID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	))
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSportsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSport, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for sports")

		return res, nil
	}

	total, err := s.repo.CountDetail(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sports")

		return res, fmt.Errorf("failed to count sports: %w", err)
	}

	details, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sports")

		return res, fmt.Errorf("failed to get sports: %w", err)
	}

	res.FromDetails(details, total, req.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sports to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sport.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSport, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sport")

		return res, fmt.Errorf("failed to get sport: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("sport not found") // nolint:wrapcheck
	}

	res.FromDetail(detail)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sport to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateSportStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sport.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if sport exists")

		return fmt.Errorf("failed to check if sport exists: %w", err)
	}

	if !exist {
		return failure.NotFound("sport not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update sport status")

		return fmt.Errorf("failed to update sport status: %w", err)
	}

	go s.invalidate(ctx, id)

	return nil
}

// Delete removes a sport that nothing references any more, together with its stored image.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".sport.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	sport, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sport")

		return fmt.Errorf("failed to get sport: %w", err)
	}

	if sport.ID == constant.Empty {
		return failure.NotFound("sport not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if shared.IsFkViolation(err) {
			return failure.BadRequestFromString("sport still has teams, bookings or schedules") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete sport")

		return fmt.Errorf("failed to delete sport: %w", err)
	}

	s.removeImage(ctx, sport.ImageURL)

	go s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSport, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete sport cache")
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllSport)
}
