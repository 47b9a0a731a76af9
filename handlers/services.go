package handlers

import (
	"net/http"

	"servease/services/catalog"
	"servease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the public service catalog endpoints.
type ServiceHandler struct {
	CatalogSvc catalog.CatalogService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(cs catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{CatalogSvc: cs}
}

// ListServicesHandler handles GET /api/services.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	grouped, err := h.CatalogSvc.ListActive()
	if err != nil {
		utils.GetLogger().Error("failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": grouped})
}

// GetServiceHandler handles GET /api/services/:id.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.CatalogSvc.GetService(id)
	if err != nil {
		utils.GetLogger().Error("service not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}
