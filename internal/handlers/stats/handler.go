package stats

import (
	"net/http"
	"sportshub/infras/otel"
	"sportshub/internal/domains/stats/model/dto"
	"sportshub/internal/domains/stats/service"
	"sportshub/shared/constant"
	"sportshub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stats", func(routerGroup chi.Router) {
		routerGroup.Get("/admin-dashboard-stats", handler.GetAdminDashboard)
	})
}

// GetAdminDashboard returns the counters shown on the admin dashboard.
// @Summary Get admin dashboard counters
// @Tags Stats
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard counters"
// @Failure 500 {object} response.Error
// @Router /v1/stats/admin-dashboard-stats [get]
// @Security BearerAuth
func (handler *Handler) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdminDashboard")
	defer scope.End()

	var res dto.DashboardResponse

	res, err := handler.service.AdminDashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
