package team

import (
	"net/http"
	"sportshub/infras/otel"
	"sportshub/internal/domains/team/model"
	"sportshub/internal/domains/team/model/dto"
	"sportshub/internal/domains/team/service"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/validator"
	"sportshub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Team
	otel    otel.Otel
}

func New(service service.Team, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/teams", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTeam)
		routerGroup.Get("/", handler.GetTeams)
		routerGroup.Get("/active", handler.GetActiveTeams)
		routerGroup.Put("/edit-request/{id}", handler.EditRequest)
		routerGroup.Get("/{id}", handler.GetTeamByID)
		routerGroup.Put("/{id}", handler.UpdateTeam)
		routerGroup.Delete("/{id}", handler.DeleteTeam)
		routerGroup.Put("/{id}/members", handler.ReplaceRoster)
		routerGroup.Put("/{id}/activate", handler.ActivateTeam)
		routerGroup.Put("/{id}/deactivate", handler.DeactivateTeam)
	})
}

// CreateTeam registers a team with its full roster in one transaction.
// @Summary Create a team
// @Tags Team
// @Accept json
// @Produce json
// @Param request body dto.CreateTeamRequest true "Create Team Request"
// @Success 201 {object} response.Data[dto.TeamResponse] "Team created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams [post]
// @Security BearerAuth
func (handler *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTeam")
	defer scope.End()

	req := dto.CreateTeamRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create team")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Team created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTeams retrieves teams. Coaches only see teams of their own sports.
// @Summary Get all teams
// @Tags Team
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param sport_id query string false "Filter by sport ID"
// @Param status query string false "Filter by status (Active, Inactive)"
// @Success 200 {object} response.Data[dto.GetTeamsResponse] "List of teams"
// @Failure 500 {object} response.Error
// @Router /v1/teams [get]
// @Security BearerAuth
func (handler *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTeams")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if sportID := r.URL.Query().Get(model.FieldSportID); sportID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldSportID,
			Operator: gDto.FilterOperatorEq,
			Value:    sportID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	teams, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get teams")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, teams)
}

// GetActiveTeams lists active teams for the public pages.
// @Summary Get active teams
// @Tags Team
// @Produce json
// @Success 200 {object} response.Data[dto.GetTeamsResponse] "Active teams"
// @Failure 500 {object} response.Error
// @Router /v1/teams/active [get]
func (handler *Handler) GetActiveTeams(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveTeams")
	defer scope.End()

	teams, err := handler.service.ListActive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active teams")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, teams)
}

// EditRequest forks a team into an inactive copy carrying the requested changes.
// @Summary Request a team edit
// @Description Deactivates the original and creates a new inactive team awaiting activation.
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body dto.EditTeamRequest true "Edit Team Request"
// @Success 201 {object} response.Data[dto.EditTeamResponse] "Edit request created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/edit-request/{id} [put]
// @Security BearerAuth
func (handler *Handler) EditRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.EditTeamRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.EditRequest(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to create team edit request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Team " + id + " forked into " + res.NewTeamID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTeamByID retrieves a team with its roster.
// @Summary Get a team by ID
// @Tags Team
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} response.Data[dto.TeamResponse] "Team details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/{id} [get]
func (handler *Handler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTeamByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	team, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get team by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, team)
}

// UpdateTeam edits a team in place. The team drops back to Inactive until an admin activates it.
// @Summary Update a team
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body dto.UpdateTeamRequest true "Update Team Request"
// @Success 200 {object} response.Data[dto.TeamResponse] "Team updated"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTeam")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTeamRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update team")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ReplaceRoster swaps the whole member list of a team atomically.
// @Summary Replace a team roster
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body dto.ReplaceRosterRequest true "Replace Roster Request"
// @Success 200 {object} response.Message "Roster replaced successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/{id}/members [put]
// @Security BearerAuth
func (handler *Handler) ReplaceRoster(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReplaceRoster")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ReplaceRosterRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReplaceRoster(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to replace roster")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Roster replaced successfully")
}

// ActivateTeam activates a team and deactivates the rest of its edit lineage.
// @Summary Activate a team
// @Tags Team
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} response.Message "Team activated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/{id}/activate [put]
// @Security BearerAuth
func (handler *Handler) ActivateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ActivateTeam")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Activate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to activate team")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Team activated successfully")
}

// DeactivateTeam marks a team inactive.
// @Summary Deactivate a team
// @Tags Team
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} response.Message "Team deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/{id}/deactivate [put]
// @Security BearerAuth
func (handler *Handler) DeactivateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateTeam")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to deactivate team")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Team deactivated successfully")
}

// DeleteTeam removes a team and its roster.
// @Summary Delete a team
// @Tags Team
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} response.Message "Team deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/teams/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTeam")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete team")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Team deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Team deleted successfully")
}
