package service

import (
	"context"
	"fmt"
	"sportshub/infras/otel"
	bookingModel "sportshub/internal/domains/booking/model"
	bookingRepo "sportshub/internal/domains/booking/repository"
	postRepo "sportshub/internal/domains/post/repository"
	scheduleModel "sportshub/internal/domains/schedule/model"
	scheduleRepo "sportshub/internal/domains/schedule/repository"
	sportModel "sportshub/internal/domains/sport/model"
	sportRepo "sportshub/internal/domains/sport/repository"
	"sportshub/internal/domains/stats/model/dto"
	teamModel "sportshub/internal/domains/team/model"
	teamRepo "sportshub/internal/domains/team/repository"
	userModel "sportshub/internal/domains/user/model"
	userRepo "sportshub/internal/domains/user/repository"
	"sportshub/shared"
	"sportshub/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Stats interface {
	AdminDashboard(ctx context.Context) (dto.DashboardResponse, error)
}

// Sources groups the repositories the dashboard counts from.
type Sources struct {
	News          postRepo.Post
	Announcements postRepo.Post
	Users         userRepo.User
	Bookings      bookingRepo.Booking
	Schedules     scheduleRepo.Schedule
	Sports        sportRepo.Sport
	Teams         teamRepo.Team
}

type serviceImpl struct {
	src  Sources
	otel otel.Otel
}

func New(src Sources, otel otel.Otel) Stats {
	return &serviceImpl{src: src, otel: otel}
}

// AdminDashboard runs every count concurrently and fails if any of them fails.
func (s *serviceImpl) AdminDashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.AdminDashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	group, gctx := errgroup.WithContext(ctx)

	count := func(name string, dst *int, fn func(context.Context) (int, error)) {
		group.Go(func() error {
			total, err := fn(gctx)
			if err != nil {
				return fmt.Errorf("failed to count %s: %w", name, err)
			}

			*dst = total

			return nil
		})
	}

	count("news", &res.News, s.src.News.Count)
	count("announcements", &res.Announcements, s.src.Announcements.Count)
	count("coaches", &res.Coaches, func(ctx context.Context) (int, error) {
		return s.src.Users.Count(ctx, shared.FilterByField(userModel.FieldRole, constant.RoleCoach, userModel.TableName))
	})
	count("pending bookings", &res.PendingBookings, func(ctx context.Context) (int, error) {
		return s.src.Bookings.Count(ctx, shared.FilterByField(bookingModel.FieldStatus, constant.StatusPending, bookingModel.TableName))
	})
	count("pending schedules", &res.PendingSchedules, func(ctx context.Context) (int, error) {
		return s.src.Schedules.Count(ctx, shared.FilterByField(scheduleModel.FieldStatus, constant.StatusPending, scheduleModel.TableName))
	})
	count("pending sports", &res.PendingSports, func(ctx context.Context) (int, error) {
		return s.src.Sports.CountDetail(ctx, shared.FilterByField(sportModel.FieldStatus, constant.StatusPending, sportModel.TableName))
	})
	count("inactive teams", &res.InactiveTeams, func(ctx context.Context) (int, error) {
		return s.src.Teams.Count(ctx, shared.FilterByField(teamModel.FieldStatus, teamModel.StatusInactive, teamModel.TableName))
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to build dashboard stats")

		return dto.DashboardResponse{}, err //nolint:wrapcheck
	}

	return res, nil
}
