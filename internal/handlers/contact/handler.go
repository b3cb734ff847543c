package contact

import (
	"net/http"
	"sportshub/infras/otel"
	"sportshub/internal/domains/contact/model"
	"sportshub/internal/domains/contact/model/dto"
	"sportshub/internal/domains/contact/service"
	"sportshub/shared"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	"sportshub/shared/validator"
	"sportshub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contact-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContactRequest)
		routerGroup.Get("/", handler.GetContactRequests)
		routerGroup.Put("/{id}/status", handler.UpdateContactRequestStatus)
	})
}

// CreateContactRequest stores a message sent from the public contact form.
// @Summary Send a contact request
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Create Contact Request"
// @Success 201 {object} response.Data[dto.ContactResponse] "Contact request created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact-requests [post]
func (handler *Handler) CreateContactRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContactRequest")
	defer scope.End()

	req := dto.CreateContactRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetContactRequests lists contact requests, newest first.
// @Summary Get all contact requests
// @Tags Contact
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (Pending, Read, Resolved)"
// @Success 200 {object} response.Data[dto.GetContactsResponse] "List of contact requests"
// @Failure 500 {object} response.Error
// @Router /v1/contact-requests [get]
// @Security BearerAuth
func (handler *Handler) GetContactRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContactRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{}
	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup = shared.FilterByField(model.FieldStatus, status, model.TableName)
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateContactRequestStatus marks a contact request as read or resolved.
// @Summary Update a contact request status
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Contact request ID"
// @Param request body dto.UpdateContactStatusRequest true "Update Contact Status Request"
// @Success 200 {object} response.Message "Contact request updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contact-requests/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateContactRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContactRequestStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateContactStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact request status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Contact request updated successfully")
}
