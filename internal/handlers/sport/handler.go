package sport

import (
	"net/http"
	"sportshub/infras/otel"
	"sportshub/internal/domains/sport/model"
	"sportshub/internal/domains/sport/model/dto"
	"sportshub/internal/domains/sport/service"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/validator"
	"sportshub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Sport
	otel    otel.Otel
}

func New(service service.Sport, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sports", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSport)
		routerGroup.Get("/", handler.GetSports)
		routerGroup.Get("/approved", handler.GetApprovedSports)
		routerGroup.Get("/pending", handler.GetPendingSports)
		routerGroup.Get("/my-approved", handler.GetMySports)
		routerGroup.Get("/{id}", handler.GetSportByID)
		routerGroup.Patch("/{id}/status", handler.UpdateSportStatus)
		routerGroup.Delete("/{id}", handler.DeleteSport)
	})
}

// CreateSport handles a coach registering a sport for approval.
// @Summary Create a sport
// @Tags Sport
// @Accept json
// @Produce json
// @Param request body dto.CreateSportRequest true "Create Sport Request"
// @Success 201 {object} response.Data[dto.SportResponse] "Sport created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sports [post]
// @Security BearerAuth
func (handler *Handler) CreateSport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSport")
	defer scope.End()

	req := dto.CreateSportRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create sport")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sport created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetSports retrieves all sports.
// @Summary Get all sports
// @Tags Sport
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (Pending, Approved, Rejected)"
// @Param coach_id query string false "Filter by coach ID"
// @Success 200 {object} response.Data[dto.GetSportsResponse] "List of sports"
// @Failure 500 {object} response.Error
// @Router /v1/sports [get]
// @Security BearerAuth
func (handler *Handler) GetSports(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSports")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldStatus, model.FieldCoachID} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	sports, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sports")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sports)
}

// GetApprovedSports lists approved sports for the public pages.
// @Summary Get approved sports
// @Tags Sport
// @Produce json
// @Success 200 {object} response.Data[dto.GetSportsResponse] "Approved sports"
// @Failure 500 {object} response.Error
// @Router /v1/sports/approved [get]
func (handler *Handler) GetApprovedSports(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApprovedSports")
	defer scope.End()

	sports, err := handler.service.ListApproved(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get approved sports")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sports)
}

// GetPendingSports lists sports awaiting approval.
// @Summary Get pending sports
// @Tags Sport
// @Produce json
// @Success 200 {object} response.Data[dto.GetSportsResponse] "Pending sports"
// @Failure 500 {object} response.Error
// @Router /v1/sports/pending [get]
// @Security BearerAuth
func (handler *Handler) GetPendingSports(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingSports")
	defer scope.End()

	sports, err := handler.service.ListPending(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending sports")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sports)
}

// GetMySports lists the caller's approved sports.
// @Summary Get my approved sports
// @Tags Sport
// @Produce json
// @Success 200 {object} response.Data[dto.GetSportsResponse] "Coach sports"
// @Failure 500 {object} response.Error
// @Router /v1/sports/my-approved [get]
// @Security BearerAuth
func (handler *Handler) GetMySports(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMySports")
	defer scope.End()

	sports, err := handler.service.ListMine(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coach sports")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sports)
}

// GetSportByID retrieves a sport by its ID.
// @Summary Get a sport by ID
// @Tags Sport
// @Produce json
// @Param id path string true "Sport ID"
// @Success 200 {object} response.Data[dto.SportResponse] "Sport details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sports/{id} [get]
func (handler *Handler) GetSportByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSportByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	sport, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sport by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sport)
}

// UpdateSportStatus approves or rejects a sport.
// @Summary Approve or reject a sport
// @Tags Sport
// @Accept json
// @Produce json
// @Param id path string true "Sport ID"
// @Param request body dto.UpdateSportStatusRequest true "Update Sport Status Request"
// @Success 200 {object} response.Message "Sport status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sports/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSportStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSportStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSportStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update sport status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Sport status updated successfully")
}

// DeleteSport removes a sport.
// @Summary Delete a sport
// @Tags Sport
// @Produce json
// @Param id path string true "Sport ID"
// @Success 200 {object} response.Message "Sport deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sports/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSport")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete sport")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Sport deleted successfully")
}
