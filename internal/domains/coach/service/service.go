package service

import (
	"context"
	"fmt"
	"sportshub/infras/otel"
	"sportshub/internal/domains/coach/model/dto"
	sportModel "sportshub/internal/domains/sport/model"
	sportRepository "sportshub/internal/domains/sport/repository"
	teamModel "sportshub/internal/domains/team/model"
	teamRepository "sportshub/internal/domains/team/repository"
	userModel "sportshub/internal/domains/user/model"
	userRepository "sportshub/internal/domains/user/repository"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// coachColumns leaves the password hash out of every directory query.
var coachColumns = []string{
	userModel.FieldID,
	userModel.FieldName,
	userModel.FieldUsername,
	userModel.FieldEmail,
	userModel.FieldRole,
	userModel.FieldStatus,
	constant.FieldCreatedAt,
}

// Coach is the read-only directory of coach accounts.
type Coach interface {
	GetAll(ctx context.Context) (dto.GetCoachesResponse, error)
	GetDetails(ctx context.Context, id string) (dto.CoachDetailsResponse, error)
}

type serviceImpl struct {
	users  userRepository.User
	sports sportRepository.Sport
	teams  teamRepository.Team
	otel   otel.Otel
}

func New(users userRepository.User, sports sportRepository.Sport, teams teamRepository.Team, otel otel.Otel) Coach {
	return &serviceImpl{
		users:  users,
		sports: sports,
		teams:  teams,
		otel:   otel,
	}
}

func isCoach(id string) gDto.FilterGroup {
	role := gDto.Filter{Field: userModel.FieldRole, Operator: gDto.FilterOperatorEq, Value: constant.RoleCoach, Table: userModel.TableName}

	if id == constant.Empty {
		return gDto.And(role)
	}

	return gDto.And(gDto.Filter{Field: userModel.FieldID, Operator: gDto.FilterOperatorEq, Value: id, Table: userModel.TableName}, role)
}

func byName(table, field string) gDto.QueryParams {
	return gDto.QueryParams{Sorts: []gDto.Sort{{Table: table, Field: field, Dir: gDto.SortDirAsc}}}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCoachesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coach.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	users, err := s.users.GetAll(ctx, byName(userModel.TableName, userModel.FieldName), isCoach(constant.Empty), coachColumns...)
	if err != nil {
		log.Error().Err(err).Msg("failed to get coaches")

		return res, fmt.Errorf("failed to get coaches: %w", err)
	}

	res.FromModels(users)

	return res, nil
}

// GetDetails loads the coach first, then the sports they lead and the teams under those sports concurrently.
func (s *serviceImpl) GetDetails(ctx context.Context, id string) (res dto.CoachDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".coach.GetDetails")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.users.Get(ctx, isCoach(id), coachColumns...)
	if err != nil {
		log.Error().Err(err).Str("coach_id", id).Msg("failed to get coach")

		return res, fmt.Errorf("failed to get coach: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("coach not found") // nolint:wrapcheck
	}

	var (
		sports []sportModel.SportDetail
		teams  []teamModel.TeamDetail
	)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		filter := gDto.And(gDto.Filter{Field: sportModel.FieldCoachID, Operator: gDto.FilterOperatorEq, Value: id, Table: sportModel.TableName})

		found, err := s.sports.GetAllDetail(gctx, byName(sportModel.TableName, sportModel.FieldName), filter)
		if err != nil {
			return fmt.Errorf("failed to get coach sports: %w", err)
		}

		sports = found

		return nil
	})

	group.Go(func() error {
		filter := gDto.And(gDto.Filter{Field: teamModel.SportFieldCoach, Operator: gDto.FilterOperatorEq, Value: id, Table: teamModel.SportTable})

		found, err := s.teams.GetAllDetail(gctx, byName(teamModel.TableName, teamModel.FieldName), filter)
		if err != nil {
			return fmt.Errorf("failed to get coach teams: %w", err)
		}

		teams = found

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("coach_id", id).Msg("failed to get coach details")

		return res, err //nolint:wrapcheck
	}

	res.FromModels(user, sports, teams)

	return res, nil
}
