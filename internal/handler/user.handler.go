package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/service"
	"github.com/siddhivinayaka18/afh-crm/pkg/response"
	"github.com/siddhivinayaka18/afh-crm/pkg/xerrors"
)

// UserHandler serves the admin-only account endpoints. The router mounts
// it behind RequireAdmin.
type UserHandler struct {
	service *service.UserService
	log     *zap.SugaredLogger
}

func NewUserHandler(service *service.UserService, log *zap.SugaredLogger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, h.log, "list users", err)
		return
	}
	response.JSON(w, http.StatusOK, users)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.log, "create user", err)
		return
	}

	user, err := h.service.Create(r.Context(), req)
	if err != nil {
		respondError(w, h.log, "create user", err)
		return
	}
	response.JSON(w, http.StatusCreated, user)
}

func (h *UserHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.SetUserActiveRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.log, "set user status", err)
		return
	}
	if req.IsActive == nil {
		respondError(w, h.log, "set user status", xerrors.NewValidation("please provide: isActive"))
		return
	}

	user, err := h.service.SetActive(r.Context(), chi.URLParam(r, "id"), *req.IsActive)
	if err != nil {
		respondError(w, h.log, "set user status", err)
		return
	}
	response.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, "delete user", err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
