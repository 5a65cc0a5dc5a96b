package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackhq/fintrack_backend/internal/core/ports/services"
	"github.com/fintrackhq/fintrack_backend/internal/dto"
	"github.com/fintrackhq/fintrack_backend/internal/middleware"
)

// lookupHandler serves the seeded reference tables.
type lookupHandler struct {
	lookupService portssvc.LookupSvcFacade
}

func newLookupHandler(lookupService portssvc.LookupSvcFacade) *lookupHandler {
	return &lookupHandler{lookupService: lookupService}
}

// registerLookupRoutes registers lookup specific routes
func registerLookupRoutes(group *gin.RouterGroup, lookupService portssvc.LookupSvcFacade) {
	h := newLookupHandler(lookupService)

	lookups := group.Group("/lookups")
	{
		lookups.GET("/transaction-types", h.listTransactionTypes)
		lookups.GET("/account-types", h.listAccountTypes)
		lookups.GET("/currencies", h.listCurrencies)
	}
}

func (h *lookupHandler) listTransactionTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.lookupService.ListTransactionTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transaction types")
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactionTypes": dto.ToTransactionTypeResponses(types)})
}

func (h *lookupHandler) listAccountTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.lookupService.ListAccountTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list account types")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accountTypes": dto.ToAccountTypeResponses(types)})
}

func (h *lookupHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.lookupService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, gin.H{"currencies": dto.ToCurrencyResponses(currencies)})
}
