// controllers/service.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yanails-backend/utils"
)

// GetServices lists the catalog in display order
func (ctl *Controller) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.store.Services())
}

// GetService retrieves a specific service by ID
func (ctl *Controller) GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	service, err := ctl.store.Service(serviceUUID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}
