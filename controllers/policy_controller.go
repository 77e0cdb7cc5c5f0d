package controllers

import (
	"net/http"
	"strings"

	"PaiDeFerro/models"
	"PaiDeFerro/services"

	"github.com/gin-gonic/gin"
)

var policyService *services.PolicyService

func SetPolicyService(service *services.PolicyService) {
	policyService = service
}

type scheduleItem struct {
	Day       string `json:"day" binding:"required"`
	StartHour string `json:"start_hour"`
	EndHour   string `json:"end_hour"`
	Allowed   bool   `json:"allowed"`
}

// policyPayload is the wire shape of a configuration update. The schedule
// arrives as a list of day items; it is normalized into the day-keyed map
// the engine reads, last item per day winning.
type policyPayload struct {
	BlockedCategories []string            `json:"blocked_categories" binding:"required"`
	BlockedKeywords   []string            `json:"blocked_keywords" binding:"required"`
	BlockedDomains    []string            `json:"blocked_domains" binding:"required"`
	AllowedCategories []string            `json:"allowed_categories" binding:"required"`
	Schedule          []scheduleItem      `json:"schedule" binding:"required"`
	Permissions       models.Permissions  `json:"permissions"`
	Restrictions      models.Restrictions `json:"restrictions"`
}

func UpdateConfig(c *gin.Context) {
	var input policyPayload
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule := make(map[string]models.ScheduleWindow, len(input.Schedule))
	for _, item := range input.Schedule {
		schedule[strings.ToLower(item.Day)] = models.ScheduleWindow{
			StartHour: item.StartHour,
			EndHour:   item.EndHour,
			Allowed:   item.Allowed,
		}
	}

	cfg := &models.PolicyConfiguration{
		BlockedCategories: input.BlockedCategories,
		BlockedKeywords:   input.BlockedKeywords,
		BlockedDomains:    input.BlockedDomains,
		AllowedCategories: input.AllowedCategories,
		Schedule:          schedule,
		Permissions:       input.Permissions,
		Restrictions:      input.Restrictions,
	}

	if err := policyService.Replace(cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Configurações atualizadas com sucesso!"})
}
