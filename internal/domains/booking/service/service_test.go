package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sportshub/config"
	mailMocks "sportshub/infras/mail/mocks"
	"sportshub/infras/otel/mocks"
	pgMocks "sportshub/infras/postgres/mocks"
	bookingMocks "sportshub/internal/domains/booking/mocks"
	"sportshub/internal/domains/booking/model"
	"sportshub/internal/domains/booking/model/dto"
	"sportshub/internal/domains/booking/service"
	"sportshub/internal/domains/conflict"
	conflictMocks "sportshub/internal/domains/conflict/mocks"
	sportMocks "sportshub/internal/domains/sport/mocks"
	venueMocks "sportshub/internal/domains/venue/mocks"
	"sportshub/shared"
	cacheMocks "sportshub/shared/cache/mocks"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"
	"sportshub/shared/timezone"
)

type fixture struct {
	svc        service.Booking
	repo       *bookingMocks.MockBooking
	sportRepo  *sportMocks.MockSport
	venueRepo  *venueMocks.MockVenue
	transactor *pgMocks.MockTransactor
	checker    *conflictMocks.MockChecker
	mailer     *mailMocks.MockSender
	cache      *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		sportRepo:  sportMocks.NewMockSport(ctrl),
		venueRepo:  venueMocks.NewMockVenue(ctrl),
		transactor: pgMocks.NewMockTransactor(ctrl),
		checker:    conflictMocks.NewMockChecker(ctrl),
		mailer:     mailMocks.NewMockSender(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.transactor.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		}).AnyTimes()

	f.svc = service.New(f.repo, f.sportRepo, f.venueRepo, f.transactor, f.checker, f.mailer, cfg, f.cache, mocks.NewOtel())

	return f
}

func pendingBooking(t *testing.T) model.BookingDetail {
	t.Helper()

	date, err := shared.ParseDay("2025-03-14")
	require.NoError(t, err)

	start, err := shared.ParseClock("10:00")
	require.NoError(t, err)

	end, err := shared.ParseClock("12:00")
	require.NoError(t, err)

	venueName := "Main Ground"

	return model.BookingDetail{
		Booking: model.Booking{
			ID:        "b-1",
			Role:      model.RoleStudent,
			UserName:  "Kasun",
			UserEmail: "kasun@campus.lk",
			SportID:   "s-1",
			VenueID:   "v-1",
			Date:      date,
			StartTime: start,
			EndTime:   end,
			EventName: "Inter-faculty Final",
			Status:    constant.StatusPending,
		},
		VenueName: &venueName,
	}
}

func TestBookingService_Submit(t *testing.T) {
	f := newFixture(t)

	valid := dto.SubmitBookingRequest{
		Role:         model.RoleStudent,
		UserName:     "Kasun",
		UserEmail:    "kasun@campus.lk",
		UniversityID: "AS2020123",
		SportID:      "s-1",
		VenueID:      "v-1",
		Date:         "2025-03-14",
		StartTime:    "10:00",
		EndTime:      "12:00",
		EventName:    "Inter-faculty Final",
	}

	inverted := valid
	inverted.StartTime, inverted.EndTime = "12:00", "10:00"

	empty := valid
	empty.EndTime = "10:00"

	tests := []struct {
		name      string
		req       dto.SubmitBookingRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "stored as pending",
			req:  valid,
			setupMock: func() {
				f.sportRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.venueRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, booking model.Booking) error {
					assert.Equal(t, constant.StatusPending, booking.Status)
					assert.Equal(t, "AS2020123", *booking.UniversityID)
					assert.Nil(t, booking.TeamName)

					return nil
				})
			},
		},
		{
			name:      "end before start",
			req:       inverted,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "zero length",
			req:       empty,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown sport",
			req:  valid,
			setupMock: func() {
				f.sportRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown venue",
			req:  valid,
			setupMock: func() {
				f.sportRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.venueRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Submit(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "10:00", res.StartTime)
			assert.Equal(t, "2025-03-14", res.Date)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC))
	restore := timezone.SetClock(fake)
	t.Cleanup(restore)

	approved := pendingBooking(t)
	approved.Status = constant.StatusApproved

	tests := []struct {
		name         string
		req          dto.UpdateBookingStatusRequest
		setupMock    func(f fixture)
		wantCode     int
		wantNotified bool
	}{
		{
			name: "approve free slot clears reason and emails requester",
			req:  dto.UpdateBookingStatusRequest{Status: constant.StatusApproved, Reason: "ignored"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetDetailForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(t), nil)
				f.checker.EXPECT().HasConflict(gomock.Any(), gomock.Any(), gomock.Any(), "b-1").
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, slot conflict.Slot, _ string) (bool, error) {
						assert.Equal(t, "v-1", slot.VenueID)

						return false, nil
					})
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, constant.StatusApproved, fields[model.FieldStatus])
						assert.Contains(t, fields, model.FieldRejectionReason)
						assert.Nil(t, fields[model.FieldRejectionReason])

						decidedAt, ok := fields[model.FieldDecidedAt].(time.Time)
						require.True(t, ok)
						assert.True(t, decidedAt.Equal(fake.Now()))

						return nil
					})
				f.mailer.EXPECT().Send(gomock.Any(), "kasun@campus.lk", "Sports Hub Booking Approved", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, body string) error {
						assert.Contains(t, body, "<strong>Inter-faculty Final</strong>")
						assert.Contains(t, body, "Main Ground")

						return nil
					})
			},
			wantNotified: true,
		},
		{
			name: "overlap leaves booking pending",
			req:  dto.UpdateBookingStatusRequest{Status: constant.StatusApproved},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetDetailForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(t), nil)
				f.checker.EXPECT().HasConflict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "reject stores reason",
			req:  dto.UpdateBookingStatusRequest{Status: constant.StatusRejected, Reason: "  Ground under maintenance "},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetDetailForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(t), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						reason, ok := fields[model.FieldRejectionReason].(*string)
						require.True(t, ok)
						assert.Equal(t, "Ground under maintenance", *reason)

						return nil
					})
				f.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), "Sports Hub Booking Rejected", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, body string) error {
						assert.Contains(t, body, "Ground under maintenance")

						return nil
					})
			},
			wantNotified: true,
		},
		{
			name:      "reject without reason",
			req:       dto.UpdateBookingStatusRequest{Status: constant.StatusRejected},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "reject with whitespace-only reason",
			req:       dto.UpdateBookingStatusRequest{Status: constant.StatusRejected, Reason: " \t\n  "},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateBookingStatusRequest{Status: constant.StatusApproved},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetDetailForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.BookingDetail{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "terminal booking",
			req:  dto.UpdateBookingStatusRequest{Status: constant.StatusRejected, Reason: "late"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetDetailForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(approved, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "mail failure is a degraded success",
			req:  dto.UpdateBookingStatusRequest{Status: constant.StatusApproved},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetDetailForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(t), nil)
				f.checker.EXPECT().HasConflict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
		},
		{
			name: "checker failure",
			req:  dto.UpdateBookingStatusRequest{Status: constant.StatusApproved},
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetDetailForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(pendingBooking(t), nil)
				f.checker.EXPECT().HasConflict(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("lock timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			res, err := f.svc.UpdateStatus(ctx, tt.req, "b-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.Status, res.Booking.Status)
			assert.Equal(t, tt.wantNotified, res.Notified)

			if !tt.wantNotified {
				assert.NotEmpty(t, res.Warning)
			}
		})
	}
}

func TestBookingService_ListApproved(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
			assert.Equal(t, "ORDER BY bookings.date DESC, bookings.start_time ASC", params.OrderClause())

			_, args := filter.GetWhereClause()
			assert.Equal(t, constant.StatusApproved, args[model.FieldStatus])

			return []model.BookingDetail{pendingBooking(t)}, nil
		})

	res, err := f.svc.ListApproved(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "Main Ground", res.Bookings[0].VenueName)
}

func TestBookingService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.BookingDetail{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
