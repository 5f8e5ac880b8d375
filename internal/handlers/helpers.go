package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
)

// paramID lê um id numérico da rota; responde 400 quando inválido.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(400, gin.H{
			"error_code": "invalid_request",
			"message":    "Dados inválidos.",
			"details":    err.Error(),
		})
		return false
	}
	return true
}
