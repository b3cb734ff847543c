package coach

import (
	"net/http"
	"sportshub/infras/otel"
	"sportshub/internal/domains/coach/model/dto"
	"sportshub/internal/domains/coach/service"
	"sportshub/shared/constant"
	"sportshub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Coach
	otel    otel.Otel
}

func New(service service.Coach, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/coaches", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCoaches)
		routerGroup.Get("/{id}/details", handler.GetCoachDetails)
	})
}

// GetCoaches lists every coach account.
// @Summary Get all coaches
// @Tags Coach
// @Produce json
// @Success 200 {object} response.Data[dto.GetCoachesResponse] "List of coaches"
// @Failure 500 {object} response.Error
// @Router /v1/coaches [get]
func (handler *Handler) GetCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoaches")
	defer scope.End()

	var res dto.GetCoachesResponse

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coaches")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCoachDetails returns a coach with their sports and teams.
// @Summary Get coach details
// @Tags Coach
// @Produce json
// @Param id path string true "Coach ID"
// @Success 200 {object} response.Data[dto.CoachDetailsResponse] "Coach details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/coaches/{id}/details [get]
func (handler *Handler) GetCoachDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCoachDetails")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var res dto.CoachDetailsResponse

	res, err := handler.service.GetDetails(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get coach details")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
