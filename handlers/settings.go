package handlers

import (
	"net/http"

	settingsRepo "cooptaxi/database/repository/settings"
	"cooptaxi/models"
	"cooptaxi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler serves the settings endpoints.
type SettingsHandler struct {
	Repo   settingsRepo.Repository
	Logger *zap.Logger
}

func NewSettingsHandler(repo settingsRepo.Repository, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{Repo: repo, Logger: logger}
}

// GetSettingsHandler handles GET /api/settings.
func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Repo.Get(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetSettings: fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettingsHandler handles PUT /api/settings. The stored document is
// replaced wholesale with the submitted one.
func (h *SettingsHandler) SaveSettingsHandler(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid settings", err.Error())
		return
	}

	if err := h.Repo.Save(c.Request.Context(), settings); err != nil {
		h.Logger.Error("SaveSettings: save failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}
