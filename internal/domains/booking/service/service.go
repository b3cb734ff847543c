//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

package service

import (
	"context"
	"fmt"
	"sportshub/config"
	"sportshub/infras/mail"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	"sportshub/internal/domains/booking/model"
	"sportshub/internal/domains/booking/model/dto"
	"sportshub/internal/domains/booking/repository"
	"sportshub/internal/domains/conflict"
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
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (dto.UpdateBookingStatusResponse, error)
	ListApproved(ctx context.Context) (dto.GetBookingsResponse, error)
	ListPending(ctx context.Context) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	sportRepo  sportRepo.Sport
	venueRepo  venueRepo.Venue
	transactor postgres.Transactor
	checker    conflict.Checker
	mailer     mail.Sender
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	sportRepo sportRepo.Sport,
	venueRepo venueRepo.Venue,
	transactor postgres.Transactor,
	checker conflict.Checker,
	mailer mail.Sender,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		sportRepo:  sportRepo,
		venueRepo:  venueRepo,
		transactor: transactor,
		checker:    checker,
		mailer:     mailer,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Submit stores a Pending request. Overlaps are only checked when an admin approves.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)

	booking, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !(conflict.Interval{Start: booking.StartTime, End: booking.EndTime}).Valid() {
		return res, failure.InvalidRangeError
	}

	sportExists, err := s.sportRepo.Exist(ctx, shared.FilterByID(req.SportID, sportModel.FieldID, sportModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if sport exists")

		return res, fmt.Errorf("failed to check if sport exists: %w", err)
	}

	if !sportExists {
		return res, failure.NotFound("sport not found") // nolint:wrapcheck
	}

	venueExists, err := s.venueRepo.Exist(ctx, shared.FilterByID(req.VenueID, venueModel.FieldID, venueModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return res, fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !venueExists {
		return res, failure.NotFound("venue not found") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

// UpdateStatus approves or rejects a Pending booking. The conflict check and the status write
// share one transaction; the requester is emailed after commit and a failed email only degrades
// the response.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (res dto.UpdateBookingStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	reason := strings.TrimSpace(req.Reason)
	if req.Status == constant.StatusRejected && reason == "" {
		return res, failure.BadRequestFromString("reason is required when rejecting a booking") // nolint:wrapcheck
	}

	user, _ := shared.UserFromContext(ctx)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var decided model.BookingDetail

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetDetailForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if current.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if current.Status != constant.StatusPending {
			return failure.ImmutableState("booking has already been " + strings.ToLower(current.Status)) // nolint:wrapcheck
		}

		decision := dto.BookingDecision{Status: req.Status, DecidedAt: timezone.Now()}

		if req.Status == constant.StatusApproved {
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
		} else {
			decision.RejectionReason = &reason
		}

		if err := s.repo.UpdateTx(ctx, tx, decision.Fields(user), filter); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		current.Status = decision.Status
		current.RejectionReason = decision.RejectionReason
		current.DecidedAt = &decision.DecidedAt
		decided = current

		return nil
	})
	if err != nil {
		if !failure.IsFailure(err) {
			log.Error().Err(err).Str("booking_id", id).Msg("failed to update booking status")
		}

		return res, err //nolint:wrapcheck
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllBooking)
	}()

	res.Booking.FromDetail(decided)
	res.Notified = true

	if err := s.notify(ctx, decided); err != nil {
		log.Warn().Err(err).Str("booking_id", id).Str("to", decided.UserEmail).Msg("failed to send booking notification")

		res.Notified = false
		res.Warning = notificationWarning
	}

	return res, nil
}

func (s *serviceImpl) notify(ctx context.Context, detail model.BookingDetail) error {
	body, err := notificationBody(detail)
	if err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, detail.UserEmail, notificationSubject(detail.Status), body); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// ListApproved returns past and upcoming approved bookings, newest day first.
func (s *serviceImpl) ListApproved(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListApproved")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{Sorts: []gDto.Sort{
		{Table: model.TableName, Field: model.FieldDate, Dir: gDto.SortDirDesc},
		{Table: model.TableName, Field: model.FieldStartTime, Dir: gDto.SortDirAsc},
	}}

	return s.list(ctx, params, constant.StatusApproved)
}

func (s *serviceImpl) ListPending(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{Sorts: []gDto.Sort{
		{Table: model.TableName, Field: constant.FieldCreatedAt, Dir: gDto.SortDirAsc},
	}}

	return s.list(ctx, params, constant.StatusPending)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	filter := shared.FilterByField(model.FieldStatus, status, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	details, err := s.repo.GetAllDetail(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromDetails(details)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromDetail(detail)

	return res, nil
}
