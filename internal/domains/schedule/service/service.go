package service

import (
	"context"
	"fmt"
	"sportshub/config"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	"sportshub/internal/domains/conflict"
	"sportshub/internal/domains/schedule/model"
	"sportshub/internal/domains/schedule/model/dto"
	"sportshub/internal/domains/schedule/repository"
	sportModel "sportshub/internal/domains/sport/model"
	sportRepo "sportshub/internal/domains/sport/repository"
	venueModel "sportshub/internal/domains/venue/model"
	venueRepo "sportshub/internal/domains/venue/repository"
	"sportshub/shared"
	"sportshub/shared/cache"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"
	"sportshub/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllSchedule = "schedule:gets"
)

type Schedule interface {
	Create(ctx context.Context, req dto.CreateScheduleRequest) (dto.ScheduleResponse, error)
	Update(ctx context.Context, req dto.UpdateScheduleRequest, id string) (dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (dto.ScheduleResponse, error)
	Reject(ctx context.Context, id string) (dto.ScheduleResponse, error)
	ListMine(ctx context.Context) (dto.GetSchedulesResponse, error)
	ListPending(ctx context.Context) (dto.GetSchedulesResponse, error)
	ListApproved(ctx context.Context) (dto.GetSchedulesResponse, error)
	ListRejected(ctx context.Context) (dto.GetSchedulesResponse, error)
	ListGuest(ctx context.Context) (dto.GetSchedulesResponse, error)
}

type serviceImpl struct {
	repo       repository.Schedule
	sportRepo  sportRepo.Sport
	venueRepo  venueRepo.Venue
	transactor postgres.Transactor
	checker    conflict.Checker
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Schedule,
	sportRepo sportRepo.Sport,
	venueRepo venueRepo.Venue,
	transactor postgres.Transactor,
	checker conflict.Checker,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		repo:       repo,
		sportRepo:  sportRepo,
		venueRepo:  venueRepo,
		transactor: transactor,
		checker:    checker,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// ownedSport loads a sport and checks that the caller coaches it.
func (s *serviceImpl) ownedSport(ctx context.Context, sportID, coach string) (sportModel.Sport, error) {
	sport, err := s.sportRepo.Get(ctx, shared.FilterByID(sportID, sportModel.FieldID, sportModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sport")

		return sport, fmt.Errorf("failed to get sport: %w", err)
	}

	if sport.ID == constant.Empty {
		return sport, failure.NotFound("sport not found") // nolint:wrapcheck
	}

	if sport.CoachID != coach {
		return sport, failure.OwnershipError
	}

	return sport, nil
}

func (s *serviceImpl) venueExists(ctx context.Context, venueID string) error {
	exists, err := s.venueRepo.Exist(ctx, shared.FilterByID(venueID, venueModel.FieldID, venueModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !exists {
		return failure.NotFound("venue not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Schedule, error) {
	schedule, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedule")

		return schedule, fmt.Errorf("failed to get schedule: %w", err)
	}

	if schedule.ID == constant.Empty {
		return schedule, failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	return schedule, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateScheduleRequest) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)

	schedule, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !(conflict.Interval{Start: schedule.StartTime, End: schedule.EndTime}).Valid() {
		return res, failure.InvalidRangeError
	}

	sport, err := s.ownedSport(ctx, req.SportID, user)
	if err != nil {
		return res, err
	}

	if sport.Status != constant.StatusApproved {
		return res, failure.BadRequestFromString("sport is not approved yet") // nolint:wrapcheck
	}

	if err = s.venueExists(ctx, req.VenueID); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, schedule); err != nil {
		log.Error().Err(err).Msg("failed to create schedule")

		return res, fmt.Errorf("failed to create schedule: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(schedule)

	return res, nil
}

// lock loads a schedule FOR UPDATE so an approval cannot land between the status check and
// the write.
func (s *serviceImpl) lock(ctx context.Context, tx *sqlx.Tx, id string) (model.Schedule, error) {
	schedule, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return schedule, fmt.Errorf("failed to lock schedule: %w", err)
	}

	if schedule.ID == constant.Empty {
		return schedule, failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	return schedule, nil
}

// unapproved matches the schedule only while it is still open to its coach.
func unapproved(id string) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: constant.StatusApproved, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
	)
}

// Update edits a schedule the caller coaches and sends it back for review.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateScheduleRequest, id string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)

	var merged model.Schedule

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err = s.ownedSport(ctx, current.SportID, user); err != nil {
			return err
		}

		if req.SportID != "" && req.SportID != current.SportID {
			if _, err = s.ownedSport(ctx, req.SportID, user); err != nil {
				return err
			}
		}

		if current.Status == constant.StatusApproved {
			return failure.ImmutableState("Approved schedules cannot be edited") // nolint:wrapcheck
		}

		merged, err = req.Merge(current)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		if !(conflict.Interval{Start: merged.StartTime, End: merged.EndTime}).Valid() {
			return failure.InvalidRangeError
		}

		if merged.VenueID != current.VenueID {
			if err = s.venueExists(ctx, merged.VenueID); err != nil {
				return err
			}
		}

		fields := shared.TransformFields(dto.NewScheduleChanges(merged), user)

		if err = s.repo.UpdateTx(ctx, tx, fields, unapproved(id)); err != nil {
			return fmt.Errorf("failed to update schedule: %w", err)
		}

		merged.ModifiedBy = user
		if at, ok := fields[constant.FieldModifiedAt].(time.Time); ok {
			merged.ModifiedAt = at
		}

		return nil
	})
	if err != nil {
		if !failure.IsFailure(err) {
			log.Error().Err(err).Str("schedule_id", id).Msg("failed to update schedule")
		}

		return res, err //nolint:wrapcheck
	}

	s.invalidate(ctx)

	res.FromModel(merged)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err = s.ownedSport(ctx, current.SportID, user); err != nil {
			return err
		}

		if current.Status == constant.StatusApproved {
			return failure.ImmutableState("Approved schedules cannot be removed") // nolint:wrapcheck
		}

		if err = s.repo.DeleteTx(ctx, tx, unapproved(id)); err != nil {
			return fmt.Errorf("failed to delete schedule: %w", err)
		}

		return nil
	})
	if err != nil {
		if !failure.IsFailure(err) {
			log.Error().Err(err).Str("schedule_id", id).Msg("failed to delete schedule")
		}

		return err //nolint:wrapcheck
	}

	s.invalidate(ctx)

	return nil
}

// Approve checks the venue against approved bookings and schedules and marks the schedule
// Approved in the same transaction.
func (s *serviceImpl) Approve(ctx context.Context, id string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var approved model.Schedule

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock schedule: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound("schedule not found") // nolint:wrapcheck
		}

		if current.Status == constant.StatusApproved {
			return failure.ImmutableState("schedule is already approved") // nolint:wrapcheck
		}

		slot := conflict.Slot{
			VenueID:  current.VenueID,
			Date:     current.Date,
			Interval: conflict.Interval{Start: current.StartTime, End: current.EndTime},
		}

		taken, err := s.checker.HasConflict(ctx, tx, slot, current.ID)
		if err != nil {
			return fmt.Errorf("failed to check venue availability: %w", err)
		}

		if taken {
			return failure.VenueConflictError
		}

		decision := dto.ScheduleDecision{Status: constant.StatusApproved, DecidedAt: timezone.Now()}

		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(decision, user), filter); err != nil {
			return fmt.Errorf("failed to approve schedule: %w", err)
		}

		current.Status = decision.Status
		current.DecidedAt = &decision.DecidedAt
		approved = current

		return nil
	})
	if err != nil {
		if !failure.IsFailure(err) {
			log.Error().Err(err).Str("schedule_id", id).Msg("failed to approve schedule")
		}

		return res, err //nolint:wrapcheck
	}

	s.invalidate(ctx)

	res.FromModel(approved)

	return res, nil
}

// Reject needs no conflict check and is allowed from any state.
func (s *serviceImpl) Reject(ctx context.Context, id string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	decision := dto.ScheduleDecision{Status: constant.StatusRejected, DecidedAt: timezone.Now()}

	if err = s.repo.Update(ctx, shared.TransformFields(decision, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reject schedule")

		return res, fmt.Errorf("failed to reject schedule: %w", err)
	}

	s.invalidate(ctx)

	current.Status = decision.Status
	current.DecidedAt = &decision.DecidedAt
	res.FromModel(current)

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)

	return s.list(ctx, shared.FilterByField(model.SportFieldCoach, user, model.SportTable))
}

func (s *serviceImpl) ListPending(ctx context.Context) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.ListPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, statusFilter(constant.StatusPending))
}

func (s *serviceImpl) ListApproved(ctx context.Context) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.ListApproved")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, statusFilter(constant.StatusApproved))
}

func (s *serviceImpl) ListRejected(ctx context.Context) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.ListRejected")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, statusFilter(constant.StatusRejected))
}

// ListGuest is the public timetable: approved schedules only.
func (s *serviceImpl) ListGuest(ctx context.Context) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.ListGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, statusFilter(constant.StatusApproved))
}

func statusFilter(status string) gDto.FilterGroup {
	return shared.FilterByField(model.FieldStatus, status, model.TableName)
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) (res dto.GetSchedulesResponse, err error) {
	params := gDto.QueryParams{Sorts: []gDto.Sort{
		{Table: model.TableName, Field: model.FieldDate, Dir: gDto.SortDirAsc},
		{Table: model.TableName, Field: model.FieldStartTime, Dir: gDto.SortDirAsc},
	}}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSchedule, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for schedules")

		return res, nil
	}

	details, err := s.repo.GetAllDetail(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedules")

		return res, fmt.Errorf("failed to get schedules: %w", err)
	}

	res.FromDetails(details)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSchedule)
	}()
}
