package controllers

import (
	"errors"
	"net/http"
	"strings"

	"PaiDeFerro/services"

	"github.com/gin-gonic/gin"
)

var filterService *services.FilterService

func SetFilterService(service *services.FilterService) {
	filterService = service
}

// bannedWords is the legacy static filter kept for the /filter endpoint.
// The configurable keyword scan lives in /check-content.
var bannedWords = []string{"proibido", "banido"}

func FilterText(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lower := strings.ToLower(input.Text)
	for _, word := range bannedWords {
		if strings.Contains(lower, word) {
			c.JSON(http.StatusOK, gin.H{"allowed": false, "reason": "Conteúdo bloqueado (palavra proibida)."})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"allowed": true})
}

func CheckContent(c *gin.Context) {
	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := filterService.ClassifyText(input.Text)
	if result.Blocked {
		c.JSON(http.StatusOK, gin.H{
			"allowed":       false,
			"reason":        "Conteúdo bloqueado",
			"blocked_words": result.Terms,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"allowed": true, "reason": "Conteúdo permitido"})
}

func CheckAccess(c *gin.Context) {
	categoria := c.Query("categoria")
	url := c.Query("url")
	dia := c.Query("dia")
	horario := c.Query("horario")

	decision, err := filterService.DecideAccess(categoria, url, dia, horario)
	if err != nil {
		if errors.Is(err, services.ErrMissingDayTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dia e horário são obrigatórios"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !decision.Allowed {
		c.JSON(http.StatusOK, gin.H{"acesso": "bloqueado", "motivo": decision.Reason})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acesso": "permitido"})
}
