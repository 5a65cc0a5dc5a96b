package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
)

// moneySourceHandler handles HTTP requests for money sources.
type moneySourceHandler struct {
	moneySourceService portssvc.MoneySourceSvcFacade
}

func newMoneySourceHandler(moneySourceService portssvc.MoneySourceSvcFacade) *moneySourceHandler {
	return &moneySourceHandler{moneySourceService: moneySourceService}
}

// registerMoneySourceRoutes registers money source specific routes
func registerMoneySourceRoutes(group *gin.RouterGroup, moneySourceService portssvc.MoneySourceSvcFacade) {
	h := newMoneySourceHandler(moneySourceService)

	sources := group.Group("/money-sources")
	{
		sources.POST("", h.createMoneySource)
		sources.GET("", h.listMoneySources)
		sources.GET("/:moneySourceID", h.getMoneySource)
		sources.PATCH("/:moneySourceID", h.updateMoneySource)
		sources.POST("/:moneySourceID/correct-balance", h.correctBalance)
		sources.DELETE("/:moneySourceID", h.deactivateMoneySource)
	}
}

func (h *moneySourceHandler) createMoneySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.CreateMoneySourceRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createMoneySource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	source, err := h.moneySourceService.CreateMoneySource(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create money source")
		return
	}

	logger.Info("Money source created", slog.String("money_source_id", source.MoneySourceID))
	c.JSON(http.StatusCreated, dto.ToMoneySourceResponse(source))
}

func (h *moneySourceHandler) getMoneySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	moneySourceID := c.Param("moneySourceID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	source, err := h.moneySourceService.GetMoneySourceByID(c.Request.Context(), userID, moneySourceID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve money source")
		return
	}

	c.JSON(http.StatusOK, dto.ToMoneySourceResponse(source))
}

func (h *moneySourceHandler) listMoneySources(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	includeInactive := c.Query("includeInactive") == "true"

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sources, err := h.moneySourceService.ListMoneySources(c.Request.Context(), userID, includeInactive)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list money sources")
		return
	}

	responses := make([]dto.MoneySourceResponse, len(sources))
	for i := range sources {
		responses[i] = dto.ToMoneySourceResponse(&sources[i])
	}
	c.JSON(http.StatusOK, gin.H{"moneySources": responses})
}

func (h *moneySourceHandler) updateMoneySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	moneySourceID := c.Param("moneySourceID")

	req := dto.UpdateMoneySourceRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateMoneySource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	source, err := h.moneySourceService.UpdateMoneySource(c.Request.Context(), userID, moneySourceID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update money source")
		return
	}

	c.JSON(http.StatusOK, dto.ToMoneySourceResponse(source))
}

func (h *moneySourceHandler) correctBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	moneySourceID := c.Param("moneySourceID")

	req := dto.CorrectBalanceRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for correctBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	source, err := h.moneySourceService.CorrectBalance(c.Request.Context(), userID, moneySourceID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to correct balance")
		return
	}

	logger.Info("Money source balance corrected", slog.String("money_source_id", moneySourceID))
	c.JSON(http.StatusOK, dto.ToMoneySourceResponse(source))
}

func (h *moneySourceHandler) deactivateMoneySource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	moneySourceID := c.Param("moneySourceID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.moneySourceService.DeactivateMoneySource(c.Request.Context(), userID, moneySourceID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate money source")
		return
	}

	c.Status(http.StatusNoContent)
}
