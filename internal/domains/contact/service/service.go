package service

import (
	"context"
	"fmt"
	"sportshub/config"
	"sportshub/infras/otel"
	"sportshub/internal/domains/contact/model"
	"sportshub/internal/domains/contact/model/dto"
	"sportshub/internal/domains/contact/repository"
	"sportshub/shared"
	"sportshub/shared/cache"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetAllContact = "contact:gets"

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateContactStatusRequest, id string) error
}

type serviceImpl struct {
	repo  repository.Contact
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Contact, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Blank() {
		return res, failure.BadRequestFromString("required fields are missing") // nolint:wrapcheck
	}

	user, _ := shared.UserFromContext(ctx)
	contact := req.ToModel(user)

	if err = s.repo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Msg("failed to create contact request")

		return res, fmt.Errorf("failed to create contact request: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllContact)
	}()

	res.FromModel(contact)

	return res, nil
}

// GetAll lists contact requests newest first.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.SortBy, params.SortDir = "", ""
	params.Sorts = []gDto.Sort{{Table: model.TableName, Field: constant.FieldCreatedAt, Dir: gDto.SortDirDesc}}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContact, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for contact requests")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact requests")

		return res, fmt.Errorf("failed to count contact requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact requests")

		return res, fmt.Errorf("failed to get contact requests: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateContactStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID)
	if err != nil {
		log.Error().Err(err).Str("contact_id", id).Msg("failed to get contact request")

		return fmt.Errorf("failed to get contact request: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("contact request not found") // nolint:wrapcheck
	}

	req.Status = req.StatusOrDefault()

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Str("contact_id", id).Msg("failed to update contact request status")

		return fmt.Errorf("failed to update contact request status: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllContact)
	}()

	return nil
}
