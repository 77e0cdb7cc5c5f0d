package controllers

import (
	"errors"
	"net/http"
	"time"

	"PaiDeFerro/services"

	"github.com/gin-gonic/gin"
)

var pairingService *services.PairingService

func SetPairingService(service *services.PairingService) {
	pairingService = service
}

func GeneratePairingCode(c *gin.Context) {
	parentID := c.Query("parent_id")
	if parentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parent_id is required"})
		return
	}

	code, err := pairingService.IssueCode(parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"codigo":    code.Code,
		"expira_em": code.ExpiresAt.Format(time.RFC3339),
	})
}

func PairDevice(c *gin.Context) {
	var input struct {
		Codigo          string `json:"codigo" binding:"required"`
		NomeDispositivo string `json:"nome_dispositivo" binding:"required"`
		Sistema         string `json:"sistema" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device, err := pairingService.RedeemCode(input.Codigo, input.NomeDispositivo, input.Sistema)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Código inválido ou já usado"})
		case errors.Is(err, services.ErrExpiredCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Código expirado"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "pareado", "device_id": device.ID})
}

func Heartbeat(c *gin.Context) {
	deviceID := c.Param("device_id")

	ts, err := pairingService.RecordHeartbeat(deviceID)
	if err != nil {
		if errors.Is(err, services.ErrDeviceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dispositivo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "ultimo_heartbeat": ts.Format(time.RFC3339)})
}

func ListDevices(c *gin.Context) {
	parentID := c.Param("parent_id")

	devices, err := pairingService.ListDevices(parentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dispositivos": devices})
}
