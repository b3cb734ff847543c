package schedule

import (
	"context"
	"net/http"
	"sportshub/infras/otel"
	"sportshub/internal/domains/schedule/model/dto"
	"sportshub/internal/domains/schedule/service"
	"sportshub/shared/constant"
	"sportshub/shared/validator"
	"sportshub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedules", func(routerGroup chi.Router) {
		routerGroup.Post("/create", handler.CreateSchedule)
		routerGroup.Get("/my-schedules", handler.GetMySchedules)
		routerGroup.Get("/guest", handler.GetGuestSchedules)

		routerGroup.Route("/coach", func(coach chi.Router) {
			coach.Put("/{id}", handler.UpdateSchedule)
			coach.Delete("/{id}", handler.DeleteSchedule)
		})

		routerGroup.Route("/admin", func(admin chi.Router) {
			admin.Get("/pending", handler.list("GetPendingSchedules", handler.service.ListPending))
			admin.Get("/approved", handler.list("GetApprovedSchedules", handler.service.ListApproved))
			admin.Get("/rejected", handler.list("GetRejectedSchedules", handler.service.ListRejected))
			admin.Put("/approve/{id}", handler.ApproveSchedule)
			admin.Put("/reject/{id}", handler.RejectSchedule)
		})
	})
}

// CreateSchedule handles a coach proposing a practice or match.
// @Summary Create a schedule
// @Description Propose a practice or match for a sport the caller coaches. The schedule starts as Pending.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleRequest true "Create Schedule Request"
// @Success 201 {object} response.Data[dto.ScheduleResponse] "Schedule created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/create [post]
// @Security BearerAuth
func (handler *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSchedule")
	defer scope.End()

	req := dto.CreateScheduleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMySchedules lists the schedules of every sport the caller coaches.
// @Summary Get my schedules
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Data[dto.GetSchedulesResponse] "Coach schedules"
// @Failure 500 {object} response.Error
// @Router /v1/schedules/my-schedules [get]
// @Security BearerAuth
func (handler *Handler) GetMySchedules(w http.ResponseWriter, r *http.Request) {
	handler.list("GetMySchedules", handler.service.ListMine)(w, r)
}

// GetGuestSchedules lists approved schedules for the public calendar.
// @Summary Get public schedules
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Data[dto.GetSchedulesResponse] "Approved schedules"
// @Failure 500 {object} response.Error
// @Router /v1/schedules/guest [get]
func (handler *Handler) GetGuestSchedules(w http.ResponseWriter, r *http.Request) {
	handler.list("GetGuestSchedules", handler.service.ListGuest)(w, r)
}

// UpdateSchedule edits a schedule that has not been approved yet. Editing sends it back to Pending.
// @Summary Edit a schedule
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param request body dto.UpdateScheduleRequest true "Update Schedule Request"
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Schedule updated"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/coach/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateScheduleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update schedule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteSchedule removes a schedule that has not been approved yet.
// @Summary Delete a schedule
// @Tags Schedule
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Message "Schedule deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/coach/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete schedule")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Schedule deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Schedule deleted successfully")
}

// ApproveSchedule approves a schedule after re-checking its venue for conflicts.
// @Summary Approve a schedule
// @Tags Schedule
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Schedule approved"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/admin/approve/{id} [put]
// @Security BearerAuth
func (handler *Handler) ApproveSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Approve(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to approve schedule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RejectSchedule rejects a schedule.
// @Summary Reject a schedule
// @Tags Schedule
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Data[dto.ScheduleResponse] "Schedule rejected"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/admin/reject/{id} [put]
// @Security BearerAuth
func (handler *Handler) RejectSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Reject(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to reject schedule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// list serves one of the unparameterised schedule listings.
// @Summary Get schedules by status
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Data[dto.GetSchedulesResponse] "Schedules"
// @Failure 500 {object} response.Error
// @Router /v1/schedules/admin/pending [get]
// @Router /v1/schedules/admin/approved [get]
// @Router /v1/schedules/admin/rejected [get]
// @Security BearerAuth
func (handler *Handler) list(name string, fetch func(ctx context.Context) (dto.GetSchedulesResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
		defer scope.End()

		schedules, err := fetch(ctx)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("handler", name).Msg("failed to get schedules")

			response.WithError(w, err)

			return
		}

		response.WithJSON(w, http.StatusOK, schedules)
	}
}
