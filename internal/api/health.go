package api

import (
	"net/http"

	"github.com/shenminzhang/wavelengthwalfie/internal/constants"

	"github.com/gin-gonic/gin"
)

// Health is a trivial liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyOK: true})
}
