package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/service"
	"github.com/siddhivinayaka18/afh-crm/pkg/response"
)

type CustomerHandler struct {
	service *service.CustomerService
	log     *zap.SugaredLogger
}

func NewCustomerHandler(service *service.CustomerService, log *zap.SugaredLogger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	customers, err := h.service.List(r.Context(), ident)
	if err != nil {
		respondError(w, h.log, "list customers", err)
		return
	}
	response.JSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	customer, err := h.service.Get(r.Context(), ident, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, "get customer", err)
		return
	}
	response.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	var req domain.CreateCustomerRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.log, "create customer", err)
		return
	}

	customer, err := h.service.Create(r.Context(), ident, req)
	if err != nil {
		respondError(w, h.log, "create customer", err)
		return
	}
	response.JSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	var req domain.UpdateCustomerRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.log, "update customer", err)
		return
	}

	customer, err := h.service.Update(r.Context(), ident, chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, h.log, "update customer", err)
		return
	}
	response.JSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), ident, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, "delete customer", err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}
