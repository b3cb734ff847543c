package service

import (
	"context"
	"fmt"
	"sportshub/config"
	"sportshub/infras/otel"
	"sportshub/infras/postgres"
	sportModel "sportshub/internal/domains/sport/model"
	sportRepo "sportshub/internal/domains/sport/repository"
	"sportshub/internal/domains/team/model"
	"sportshub/internal/domains/team/model/dto"
	"sportshub/internal/domains/team/repository"
	"sportshub/shared"
	"sportshub/shared/cache"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/failure"
	"sportshub/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetTeam    = "team:get"
	cacheGetAllTeam = "team:gets"
)

type Team interface {
	Create(ctx context.Context, req dto.CreateTeamRequest) (dto.TeamResponse, error)
	Update(ctx context.Context, req dto.UpdateTeamRequest, id string) (dto.TeamResponse, error)
	ReplaceRoster(ctx context.Context, req dto.ReplaceRosterRequest, id string) error
	EditRequest(ctx context.Context, req dto.EditTeamRequest, id string) (dto.EditTeamResponse, error)
	Activate(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.TeamResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTeamsResponse, error)
	ListActive(ctx context.Context) (dto.GetTeamsResponse, error)
}

type serviceImpl struct {
	repo       repository.Team
	memberRepo repository.Member
	sportRepo  sportRepo.Sport
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Team,
	memberRepo repository.Member,
	sportRepo sportRepo.Sport,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Team {
	return &serviceImpl{
		repo:       repo,
		memberRepo: memberRepo,
		sportRepo:  sportRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func rosterOf(teamID string) gDto.FilterGroup {
	return shared.FilterByField(model.MemberFieldTeamID, teamID, model.MemberTableName)
}

// authorize loads the sport a team belongs to. Admins may manage any team, coaches only
// the teams of sports they coach.
func (s *serviceImpl) authorize(ctx context.Context, sportID string, requireApproved bool) error {
	user, role := shared.UserFromContext(ctx)

	sport, err := s.sportRepo.Get(ctx, shared.FilterByID(sportID, sportModel.FieldID, sportModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sport")

		return fmt.Errorf("failed to get sport: %w", err)
	}

	if sport.ID == constant.Empty {
		return failure.NotFound("sport not found") // nolint:wrapcheck
	}

	if role != constant.RoleAdmin && sport.CoachID != user {
		return failure.OwnershipError
	}

	if requireApproved && sport.Status != constant.StatusApproved {
		return failure.BadRequestFromString("sport is not approved yet") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Team, error) {
	team, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get team")

		return team, fmt.Errorf("failed to get team: %w", err)
	}

	if team.ID == constant.Empty {
		return team, failure.NotFound("team not found") // nolint:wrapcheck
	}

	return team, nil
}

// replaceRosterTx swaps the whole roster of teamID. Callers own the transaction.
func (s *serviceImpl) replaceRosterTx(ctx context.Context, tx *sqlx.Tx, teamID string, members []model.TeamMember) error {
	if err := s.memberRepo.DeleteTx(ctx, tx, rosterOf(teamID)); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}

	if err := s.memberRepo.InsertBulkTx(ctx, tx, members); err != nil {
		return fmt.Errorf("failed to insert roster: %w", err)
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTeamRequest) (res dto.TeamResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.authorize(ctx, req.SportID, true); err != nil {
		return res, err
	}

	user, _ := shared.UserFromContext(ctx)
	now := timezone.Now()
	team := req.ToModel(user, now)
	members := dto.ToMembers(req.Members, team.ID, user, now)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, team); err != nil {
			return fmt.Errorf("failed to insert team: %w", err)
		}

		if err := s.memberRepo.InsertBulkTx(ctx, tx, members); err != nil {
			return fmt.Errorf("failed to insert roster: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create team")

		return res, err //nolint:wrapcheck
	}

	s.invalidate(ctx, team.ID)

	res.FromModel(team, members)

	return res, nil
}

// Update renames or moves a team, replaces its roster and sends it back for review.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTeamRequest, id string) (res dto.TeamResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.authorize(ctx, current.SportID, false); err != nil {
		return res, err
	}

	if req.SportID != current.SportID {
		if err = s.authorize(ctx, req.SportID, true); err != nil {
			return res, err
		}
	}

	user, _ := shared.UserFromContext(ctx)
	now := timezone.Now()
	members := dto.ToMembers(req.Members, id, user, now)
	changes := dto.TeamChanges{Name: req.Name, SportID: req.SportID, Status: model.StatusInactive}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(changes, user), byID(id)); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}

		return s.replaceRosterTx(ctx, tx, id, members)
	})
	if err != nil {
		log.Error().Err(err).Str("team_id", id).Msg("failed to update team")

		return res, err //nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	current.Name = changes.Name
	current.SportID = changes.SportID
	current.Status = changes.Status
	current.ModifiedAt = now
	current.ModifiedBy = user
	res.FromModel(current, members)

	return res, nil
}

// ReplaceRoster atomically swaps the members of a team. On failure the previous roster stays.
func (s *serviceImpl) ReplaceRoster(ctx context.Context, req dto.ReplaceRosterRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.ReplaceRoster")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.authorize(ctx, current.SportID, false); err != nil {
		return err
	}

	user, _ := shared.UserFromContext(ctx)
	members := dto.ToMembers(req.Members, id, user, timezone.Now())

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		return s.replaceRosterTx(ctx, tx, id, members)
	})
	if err != nil {
		log.Error().Err(err).Str("team_id", id).Msg("failed to replace roster")

		return err //nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// EditRequest forks a team: the original goes Inactive and a new Inactive team with the
// requested name and roster points back to it. Nothing is visible unless all of it commits.
func (s *serviceImpl) EditRequest(ctx context.Context, req dto.EditTeamRequest, id string) (res dto.EditTeamResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.EditRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)
	now := timezone.Now()

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		original, err := s.repo.GetForUpdateTx(ctx, tx, byID(id))
		if err != nil {
			return fmt.Errorf("failed to lock team: %w", err)
		}

		if original.ID == constant.Empty {
			return failure.NotFound("team not found") // nolint:wrapcheck
		}

		if err := s.authorize(ctx, original.SportID, false); err != nil {
			return err
		}

		status := dto.TeamStatus{Status: model.StatusInactive}
		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(status, user), byID(id)); err != nil {
			return fmt.Errorf("failed to deactivate team: %w", err)
		}

		fork := req.Fork(original, user, now)
		if err := s.repo.InsertTx(ctx, tx, fork); err != nil {
			return fmt.Errorf("failed to insert team: %w", err)
		}

		if err := s.memberRepo.InsertBulkTx(ctx, tx, dto.ToMembers(req.Members, fork.ID, user, now)); err != nil {
			return fmt.Errorf("failed to insert roster: %w", err)
		}

		res.NewTeamID = fork.ID

		return nil
	})
	if err != nil {
		if !failure.IsFailure(err) {
			log.Error().Err(err).Str("team_id", id).Msg("failed to fork team")
		}

		return dto.EditTeamResponse{}, err //nolint:wrapcheck
	}

	s.invalidate(ctx, id, res.NewTeamID)

	return res, nil
}

// Activate promotes a team and retires every other team of its lineage, so one lineage
// never shows two Active rosters.
func (s *serviceImpl) Activate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.Activate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		team, err := s.repo.GetForUpdateTx(ctx, tx, byID(id))
		if err != nil {
			return fmt.Errorf("failed to lock team: %w", err)
		}

		if team.ID == constant.Empty {
			return failure.NotFound("team not found") // nolint:wrapcheck
		}

		inactive := shared.TransformFields(dto.TeamStatus{Status: model.StatusInactive}, user)

		for _, filter := range lineage(team) {
			if err := s.repo.UpdateTx(ctx, tx, inactive, filter); err != nil {
				return fmt.Errorf("failed to deactivate lineage: %w", err)
			}
		}

		active := shared.TransformFields(dto.TeamStatus{Status: model.StatusActive}, user)
		if err := s.repo.UpdateTx(ctx, tx, active, byID(id)); err != nil {
			return fmt.Errorf("failed to activate team: %w", err)
		}

		return nil
	})
	if err != nil {
		if !failure.IsFailure(err) {
			log.Error().Err(err).Str("team_id", id).Msg("failed to activate team")
		}

		return err //nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// lineage selects the relatives of team: its forks, and when it is a fork, its parent and siblings.
func lineage(team model.Team) []gDto.FilterGroup {
	filters := []gDto.FilterGroup{
		shared.FilterByField(model.FieldParentTeamID, team.ID, model.TableName),
	}

	if team.ParentTeamID != nil {
		filters = append(filters,
			byID(*team.ParentTeamID),
			gDto.And(
				gDto.Filter{Field: model.FieldParentTeamID, Value: *team.ParentTeamID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldID, Value: team.ID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
			),
		)
	}

	return filters
}

func (s *serviceImpl) Deactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.Deactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := shared.UserFromContext(ctx)

	if _, err = s.get(ctx, id); err != nil {
		return err
	}

	status := dto.TeamStatus{Status: model.StatusInactive}
	if err = s.repo.Update(ctx, shared.TransformFields(status, user), byID(id)); err != nil {
		log.Error().Err(err).Msg("failed to deactivate team")

		return fmt.Errorf("failed to deactivate team: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes a team. Members go with it through the foreign key cascade.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.authorize(ctx, current.SportID, false); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, byID(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete team")

		return fmt.Errorf("failed to delete team: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TeamResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTeam, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	detail, err := s.repo.GetDetail(ctx, byID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get team")

		return res, fmt.Errorf("failed to get team: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("team not found") // nolint:wrapcheck
	}

	members, err := s.memberRepo.GetAll(ctx, gDto.QueryParams{}, rosterOf(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get team members")

		return res, fmt.Errorf("failed to get team members: %w", err)
	}

	res.FromDetail(detail, members)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save team to cache")
		}
	}()

	return res, nil
}

// GetAll lists teams newest first. Coaches only see the teams of their own sports.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTeamsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if user, role := shared.UserFromContext(ctx); role == constant.RoleCoach {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field: model.SportFieldCoach, Value: user, Operator: gDto.FilterOperatorEq, Table: model.SportTable,
		})
	}

	return s.list(ctx, params, filter)
}

func (s *serviceImpl) ListActive(ctx context.Context) (res dto.GetTeamsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".team.ListActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, gDto.QueryParams{}, shared.FilterByField(model.FieldStatus, model.StatusActive, model.TableName))
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTeamsResponse, err error) {
	if len(params.Sorts) == 0 && params.SortBy == "" {
		params.Sorts = []gDto.Sort{{Table: model.TableName, Field: constant.FieldCreatedAt, Dir: gDto.SortDirDesc}}
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTeam, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for teams")

		return res, nil
	}

	total, err := s.repo.CountDetail(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count teams")

		return res, fmt.Errorf("failed to count teams: %w", err)
	}

	details, err := s.repo.GetAllDetail(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get teams")

		return res, fmt.Errorf("failed to get teams: %w", err)
	}

	roster, err := s.rosters(ctx, details)
	if err != nil {
		return res, err
	}

	res.FromDetails(details, roster, total, params.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save teams to cache")
		}
	}()

	return res, nil
}

// rosters loads the members of every listed team in one query.
func (s *serviceImpl) rosters(ctx context.Context, details []model.TeamDetail) (map[string][]model.TeamMember, error) {
	roster := map[string][]model.TeamMember{}
	if len(details) == 0 {
		return roster, nil
	}

	ids := make([]string, len(details))
	for i, detail := range details {
		ids[i] = detail.ID
	}

	members, err := s.memberRepo.GetAll(ctx, gDto.QueryParams{}, gDto.And(gDto.Filter{
		Field: model.MemberFieldTeamID, Value: ids, Operator: gDto.FilterOperatorIn, Table: model.MemberTableName,
	}))
	if err != nil {
		log.Error().Err(err).Msg("failed to get team members")

		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	for _, member := range members {
		roster[member.TeamID] = append(roster[member.TeamID], member)
	}

	return roster, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, ids ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, id := range ids {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTeam, id)); err != nil {
				log.Error().Err(err).Str("team_id", id).Msg("failed to delete team cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTeam)
	}()
}
