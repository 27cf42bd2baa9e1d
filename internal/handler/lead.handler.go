package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/service"
	"github.com/siddhivinayaka18/afh-crm/pkg/response"
)

type LeadHandler struct {
	service *service.LeadService
	log     *zap.SugaredLogger
}

func NewLeadHandler(service *service.LeadService, log *zap.SugaredLogger) *LeadHandler {
	return &LeadHandler{
		service: service,
		log:     log,
	}
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	leads, err := h.service.List(r.Context(), ident)
	if err != nil {
		respondError(w, h.log, "list leads", err)
		return
	}
	response.JSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	lead, err := h.service.Get(r.Context(), ident, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, "get lead", err)
		return
	}
	response.JSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	var req domain.CreateLeadRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.log, "create lead", err)
		return
	}

	lead, err := h.service.Create(r.Context(), ident, req)
	if err != nil {
		respondError(w, h.log, "create lead", err)
		return
	}
	response.JSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLeadRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.log, "update lead", err)
		return
	}

	lead, err := h.service.Update(r.Context(), ident, chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, h.log, "update lead", err)
		return
	}
	response.JSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), ident, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, "delete lead", err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Lead deleted successfully"})
}
