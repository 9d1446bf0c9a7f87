package handlers

import (
	"errors"
	"net/http"

	"cooptaxi/models"
	"cooptaxi/services/fleet"
	"cooptaxi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FleetHandler serves the service-record endpoints.
type FleetHandler struct {
	Svc    fleet.DataService
	Logger *zap.Logger
}

func NewFleetHandler(svc fleet.DataService, logger *zap.Logger) *FleetHandler {
	return &FleetHandler{Svc: svc, Logger: logger}
}

// ListServicesHandler handles GET /api/services.
func (h *FleetHandler) ListServicesHandler(c *gin.Context) {
	records, err := h.Svc.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, records)
}

// AddServiceHandler handles POST /api/services. A remote-mode create failure
// is surfaced as 502 rather than written locally, so the UI never shows a
// ride that was not actually saved.
func (h *FleetHandler) AddServiceHandler(c *gin.Context) {
	var draft models.ServiceDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service draft", err.Error())
		return
	}

	record, err := h.Svc.AddService(c.Request.Context(), draft)
	if err != nil {
		if errors.Is(err, fleet.ErrInvalidDraft) {
			utils.JSONError(c, http.StatusBadRequest, "invalid service draft", err.Error())
			return
		}
		h.Logger.Error("AddService: create failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to save service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, record)
}

// DeleteServiceHandler handles DELETE /api/services/:id. Deleting an unknown
// id succeeds; the operation is a no-op.
func (h *FleetHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.DeleteService(c.Request.Context(), id); err != nil {
		h.Logger.Error("DeleteService: delete failed", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
