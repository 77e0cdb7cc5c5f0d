package routes

import (
	"PaiDeFerro/controllers"
	"PaiDeFerro/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Public routes
	r.GET("/", controllers.Root)
	r.GET("/health", controllers.Health)
	r.POST("/register/parent", controllers.RegisterParent)
	r.POST("/login/parent", controllers.LoginParent)

	// Content filtering and access checks are queried by child devices and
	// carry no credentials.
	r.POST("/filter", controllers.FilterText)
	r.POST("/check-content", controllers.CheckContent)
	r.GET("/verificar_acesso", controllers.CheckAccess)

	// Pairing endpoints called from the child device
	r.POST("/parear_dispositivo", controllers.PairDevice)
	r.POST("/heartbeat/:device_id", controllers.Heartbeat)

	// Admin routes require a parent token
	admin := r.Group("/")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.POST("/atualizar_config", controllers.UpdateConfig)
		admin.POST("/gerar_codigo_pareamento", controllers.GeneratePairingCode)
		admin.GET("/listar_dispositivos/:parent_id", controllers.ListDevices)
	}
}
