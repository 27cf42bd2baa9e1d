package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/service"
	"github.com/siddhivinayaka18/afh-crm/pkg/response"
)

type AuthHandler struct {
	service *service.AuthService
	log     *zap.SugaredLogger
}

func NewAuthHandler(service *service.AuthService, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.log, "register", err)
		return
	}

	user, token, err := h.service.Register(r.Context(), req)
	if err != nil {
		respondError(w, h.log, "register", err)
		return
	}
	response.JSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		respondError(w, h.log, "login", err)
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, h.log, "login", err)
		return
	}
	response.JSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	user, err := h.service.Me(r.Context(), ident.UserID)
	if err != nil {
		respondError(w, h.log, "me", err)
		return
	}
	response.JSON(w, http.StatusOK, user)
}
