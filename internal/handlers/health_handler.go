package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/Harika-001-tech/prenatal-app/internal/domain/appointment"
	"github.com/Harika-001-tech/prenatal-app/internal/httperr"
)

type HealthHandler struct {
	repo domain.Repository
}

func NewHealthHandler(repo domain.Repository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.repo.Ping(c.Request.Context()); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
