package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/siddhivinayaka18/afh-crm/internal/service"
	"github.com/siddhivinayaka18/afh-crm/pkg/response"
)

type DashboardHandler struct {
	service *service.DashboardService
	log     *zap.SugaredLogger
}

func NewDashboardHandler(service *service.DashboardService, log *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.ComputeStats(r.Context(), ident)
	if err != nil {
		respondError(w, h.log, "dashboard stats", err)
		return
	}
	response.JSON(w, http.StatusOK, snapshot)
}
